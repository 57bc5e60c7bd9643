package main

import (
	"bitbucket.org/sotavant/github-activity-skill/internal/config"
	"bitbucket.org/sotavant/github-activity-skill/internal/github"
	"bitbucket.org/sotavant/github-activity-skill/internal/httpclient"
	"bitbucket.org/sotavant/github-activity-skill/internal/i18n"
	"bitbucket.org/sotavant/github-activity-skill/internal/logger"
	"bitbucket.org/sotavant/github-activity-skill/internal/skill"
	"go.uber.org/zap"
	"net/http"
	"strings"
)

func main() {
	cfg := parseFlags()
	if err := run(cfg); err != nil {
		panic(err)
	}
}

func gzipMiddleware(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ow := w

		acceptEncoding := r.Header.Get("Accept-Encoding")
		supportGzip := strings.Contains(acceptEncoding, "gzip")

		if supportGzip {
			cw := newCompressWriter(w)
			ow = cw
			defer func(cw *compressWriter) {
				if err := cw.Close(); err != nil {
					logger.Log.Debug("compressWriterError", zap.Error(err))
				}
			}(cw)
		}

		contentEncoding := r.Header.Get("Content-Encoding")

		sendsGzip := strings.Contains(contentEncoding, "gzip")
		if sendsGzip {
			cr, err := newCompressReader(r.Body)
			if err != nil {
				logger.Log.Debug("newCompressReaderError", zap.Error(err))
				ow.WriteHeader(http.StatusInternalServerError)
				return
			}
			r.Body = cr
			defer func(cr *compressReader) {
				if err := cr.Close(); err != nil {
					logger.Log.Debug("closeCompressReaderError", zap.Error(err))
				}
			}(cr)
		}

		h.ServeHTTP(ow, r)
	}
}

func newSkill(cfg config.Config) (*skill.Skill, error) {
	bundle, err := i18n.Load(cfg.DefaultLocale)
	if err != nil {
		return nil, err
	}

	hc := httpclient.New(cfg.GitHubAPIURL, cfg.UserAgent, logger.Log)
	return skill.New(github.NewClient(hc), bundle, logger.Log), nil
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}

	s, err := newSkill(cfg)
	if err != nil {
		return err
	}
	appInstance := newApp(s)

	logger.Log.Info("Running server", zap.String("address", cfg.RunAddr))

	return http.ListenAndServe(cfg.RunAddr, logger.RequestLogger(gzipMiddleware(appInstance.webhook)))
}
