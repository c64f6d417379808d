package httpclient

import (
	"net/http"

	"github.com/kbukum/gogskit/credentials"
)

// stagesFor returns the credential-dependent inner stages, outermost first.
// Token credentials add the token stage, limited to the API host; every pipeline ends with
// failure normalization next to the base transport.
func stagesFor(creds credentials.Credentials, host string) []Stage {
	if creds.Type() == credentials.TypeToken {
		return []Stage{TokenStage(creds.Secret(), host), NormalizeStage()}
	}
	return []Stage{NormalizeStage()}
}

// applyAuth sets the request-level credential headers. Only password
// credentials set anything: a Basic Authorization header.
func applyAuth(req *http.Request, creds credentials.Credentials) {
	if creds.Type() == credentials.TypePassword {
		req.SetBasicAuth(creds.Identifier(), creds.Secret())
	}
}
