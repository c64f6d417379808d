package main

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/kbukum/gogskit/entity"
	"github.com/kbukum/gogskit/errors"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func validateOutput(format string) error {
	switch format {
	case outputJSON, outputYAML:
		return nil
	default:
		return errors.InvalidArgument("output", "must be json or yaml, got "+format)
	}
}

// printResult writes v in the selected format. YAML keys follow the JSON
// names of the entity.
func (a *app) printResult(w io.Writer, v any) error {
	data, err := entity.SerializeIndent(v)
	if err != nil {
		return err
	}
	if a.flags.output == outputYAML {
		if data, err = jsonToYAML(data); err != nil {
			return err
		}
	} else {
		data = append(data, '\n')
	}
	_, err = w.Write(data)
	return err
}

func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errors.Parse("unable to convert output to yaml", err)
	}
	plainStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, errors.Parse("unable to convert output to yaml", err)
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Parse("unable to convert output to yaml", err)
	}
	return buf.Bytes(), nil
}

// plainStyle drops the flow and quoting styles the JSON input parses with.
// The encoder still quotes strings that would otherwise read as another type.
func plainStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		plainStyle(c)
	}
}
