// Package security builds TLS client settings for talking to Gogs servers
// that use a private CA, a self-signed certificate or mutual TLS.
//
//	gogs:
//	  tls:
//	    ca_file: /etc/ssl/internal-ca.pem
//	    min_version: "1.3"
//
//	tlsConfig, err := cfg.Build()
package security
