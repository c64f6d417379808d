package entity

import "testing"

func TestDataEnvelope_Parse(t *testing.T) {
	env, err := Parse[DataEnvelope[[]sample]]([]byte(`{"ok":false,"data":[{"id":1},{"id":2}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.OK() {
		t.Error("data envelope should always report ok")
	}
	if len(env.Data) != 2 || env.Data[1].ID != 2 {
		t.Errorf("unexpected data: %+v", env.Data)
	}
}

func TestDataEnvelope_Serialize(t *testing.T) {
	data, err := Serialize(DataEnvelope[[]int]{Data: []int{1, 2}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"ok":true,"data":[1,2]}` {
		t.Errorf("unexpected json: %s", data)
	}
}

func TestErrorEnvelope(t *testing.T) {
	env, ok := TryParse[ErrorEnvelope]([]byte(`{"ok":false,"error":"x"}`))
	if !ok || env.Error != "x" {
		t.Fatalf("expected error envelope, got (%v, %v)", env, ok)
	}
	if env.OK() {
		t.Error("error envelope should never report ok")
	}
	data, err := Serialize(ErrorEnvelope{Error: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"ok":false,"error":"x"}` {
		t.Errorf("unexpected json: %s", data)
	}
}
