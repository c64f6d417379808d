package httpclient

import (
	"crypto/tls"
	"net/http"
	"net/url"

	"golang.org/x/net/http/httpproxy"
)

// newTransportFactory returns a factory producing one base transport per
// call. TLS material and the proxy selector are resolved once here.
func newTransportFactory(cfg Config) (func() http.RoundTripper, error) {
	var tlsCfg *tls.Config
	if cfg.TLS != nil {
		built, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		tlsCfg = built
	}

	proxyFunc := proxySelector(cfg)
	proxy := func(req *http.Request) (*url.URL, error) {
		return proxyFunc(req.URL)
	}

	return func() http.RoundTripper {
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.Proxy = proxy
		if tlsCfg != nil {
			t.TLSClientConfig = tlsCfg.Clone()
		}
		return t
	}, nil
}

func proxySelector(cfg Config) func(*url.URL) (*url.URL, error) {
	if cfg.Proxy == "" {
		return httpproxy.FromEnvironment().ProxyFunc()
	}
	pc := &httpproxy.Config{
		HTTPProxy:  cfg.Proxy,
		HTTPSProxy: cfg.Proxy,
		NoProxy:    cfg.NoProxy,
	}
	return pc.ProxyFunc()
}

func closeIdle(rt http.RoundTripper) {
	if c, ok := rt.(interface{ CloseIdleConnections() }); ok {
		c.CloseIdleConnections()
	}
}
