// Copyright (c) 2026 Khramtsov Aleksei (seniorGolang@gmail.com).
// conditions defined in file 'LICENSE', which is part of this project source code.

package server

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/crypto/acme/autocert"
)

const (
	httpsAddr = ":443"
	acmeAddr  = ":80"
)

// ServeTLS serves HTTPS on :443 with Let's Encrypt certificates for domain.
// Port 80 answers ACME HTTP-01 challenges and redirects everything else to HTTPS.
func (srv *Server) ServeTLS(domain, cacheDir string) (err error) {

	manager := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(cacheDir),
		HostPolicy: hostPolicy(domain),
	}

	challenge := &http.Server{
		Addr:              acmeAddr,
		Handler:           manager.HTTPHandler(redirectHandler(domain)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := challenge.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.log.Error("acme challenge server failed", slog.String("addr", acmeAddr), slog.Any("error", err))
		}
	}()
	defer challenge.Close()

	config := manager.TLSConfig()
	config.MinVersion = tls.VersionTLS12

	var ln net.Listener
	if ln, err = tls.Listen("tcp", httpsAddr, config); err != nil {
		return fmt.Errorf("%s: %w", "listen "+httpsAddr, err)
	}
	srv.log.Info("https server started", slog.String("addr", httpsAddr), slog.String("domain", domain))
	return srv.srvHTTP.Listener(ln)
}

// hostPolicy allows the bare domain and its www. alias.
func hostPolicy(domain string) autocert.HostPolicy {
	return func(_ context.Context, host string) error {
		if host == domain || host == "www."+domain {
			return nil
		}
		return fmt.Errorf("acme/autocert: host %q not configured", host)
	}
}

func redirectHandler(domain string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "https://"+domain+r.URL.RequestURI(), http.StatusMovedPermanently)
	})
}
