package args

import (
	"strings"

	"github.com/abdul-hamid-achik/hitcurl/packages/core/config"
	"golang.org/x/net/http/httpguts"
)

type valueStep func(cfg config.RequestConfig, value string) (config.RequestConfig, error)

type switchStep func(cfg config.RequestConfig) config.RequestConfig

var valueFlags = map[string]valueStep{
	"-X": func(cfg config.RequestConfig, v string) (config.RequestConfig, error) {
		return cfg.WithMethod(config.ParseMethod(v)), nil
	},
	"-d": func(cfg config.RequestConfig, v string) (config.RequestConfig, error) {
		return cfg.WithFormData(v), nil
	},
	"--json": func(cfg config.RequestConfig, v string) (config.RequestConfig, error) {
		return cfg.WithJSONBody(v), nil
	},
	"-H": applyHeader,
	"-o": func(cfg config.RequestConfig, v string) (config.RequestConfig, error) {
		return cfg.WithOutFile(v), nil
	},
}

var switchFlags = map[string]switchStep{
	"-I":     config.RequestConfig.WithHeadOnly,
	"--head": config.RequestConfig.WithHeadOnly,
	"-L":     config.RequestConfig.WithFollowRedirects,
	"-s":     config.RequestConfig.WithSilent,
}

// Parse folds tokens (program name excluded) into a RequestConfig.
func Parse(tokens []string) (config.RequestConfig, error) {
	cfg := config.NewRequestConfig()
	for i := 0; i < len(tokens); {
		next, consumed, err := step(cfg, tokens[i:])
		if err != nil {
			return config.RequestConfig{}, err
		}
		cfg = next
		i += consumed
	}

	if cfg.URL == "" {
		return config.RequestConfig{}, ErrUsage
	}
	if !cfg.Method.Supported() {
		return config.RequestConfig{}, &config.UnsupportedMethodError{Method: cfg.Method}
	}
	return cfg, nil
}

// step applies the option at the head of rest and reports how many tokens it used.
func step(cfg config.RequestConfig, rest []string) (config.RequestConfig, int, error) {
	token := rest[0]

	if apply, ok := valueFlags[token]; ok {
		if len(rest) < 2 {
			return cfg, 1, nil
		}
		next, err := apply(cfg, rest[1])
		return next, 2, err
	}

	if apply, ok := switchFlags[token]; ok {
		return apply(cfg), 1, nil
	}

	if strings.HasPrefix(token, "-") {
		return cfg, 0, &UnknownFlagError{Flag: token}
	}

	if cfg.URL == "" {
		if url := strings.TrimSpace(token); url != "" {
			cfg = cfg.WithURL(url)
		}
	}
	return cfg, 1, nil
}

func applyHeader(cfg config.RequestConfig, raw string) (config.RequestConfig, error) {
	name, value, found := strings.Cut(raw, ":")
	if !found {
		return cfg, &HeaderSyntaxError{Raw: raw}
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if !httpguts.ValidHeaderFieldName(name) || !httpguts.ValidHeaderFieldValue(value) {
		return cfg, &InvalidHeaderError{Name: name, Value: value}
	}
	return cfg.WithHeader(name, value), nil
}
