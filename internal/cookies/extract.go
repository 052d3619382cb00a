package cookies

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/sync/errgroup"

	"github.com/warpdl/chromecookies/pkg/credman/encryption"
	"github.com/warpdl/chromecookies/pkg/credman/keyring"
	"github.com/warpdl/chromecookies/pkg/logger"
)

// Target is a parsed request URI.
type Target struct {
	// URI is the raw URI as given by the caller.
	URI string
	// Domain is the registrable domain used to query the store.
	Domain string
	MatchContext
}

// ParseTarget parses uri and derives the match context and registrable domain.
func ParseTarget(uri string) (Target, error) {
	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Hostname() == "" {
		return Target{}, ErrInvalidURI
	}
	host := strings.ToLower(strings.TrimSuffix(u.Hostname(), "."))

	domain := host
	if net.ParseIP(host) == nil {
		domain, err = publicsuffix.EffectiveTLDPlusOne(host)
		if err != nil {
			return Target{}, fmt.Errorf("%w: %w", ErrDomainParse, err)
		}
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	scheme := strings.ToLower(u.Scheme)

	return Target{
		URI:    uri,
		Domain: domain,
		MatchContext: MatchContext{
			Host:   host,
			Path:   path,
			Secure: scheme == "https" || scheme == "wss",
		},
	}, nil
}

// Extractor runs the extraction pipeline: key and rows are fetched
// concurrently, then values are decrypted, filtered, de-duplicated and
// formatted. An Extractor holds no per-call state and may be reused.
type Extractor struct {
	Secret     keyring.Provider
	Iterations int
	Open       Opener
	Log        logger.Logger
}

// NewExtractor wires an Extractor to a Platform.
func NewExtractor(p Platform, log logger.Logger) *Extractor {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Extractor{
		Secret:     p.Secret,
		Iterations: p.Iterations,
		Open: func(ctx context.Context) (RowSource, error) {
			path, err := p.StorePath()
			if err != nil {
				return nil, err
			}
			log.Info("reading cookie store %s", path)
			return OpenStore(ctx, path)
		},
		Log: log,
	}
}

func (e *Extractor) logger() logger.Logger {
	if e.Log == nil {
		return logger.NewNopLogger()
	}
	return e.Log
}

func (e *Extractor) deriveKey(ctx context.Context) ([]byte, error) {
	passphrase, err := e.Secret.Passphrase(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}
	key, err := encryption.DeriveKey(passphrase, e.Iterations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivation, err)
	}
	return key, nil
}

func (e *Extractor) fetchRows(ctx context.Context, domain string) (records []Record, err error) {
	src, err := e.Open(ctx)
	if err != nil {
		if errors.Is(err, ErrStorage) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			records = nil
			err = cerr
		}
	}()
	return src.Rows(ctx, domain)
}

// Extract returns the cookies that apply to uri, most specific first.
func (e *Extractor) Extract(ctx context.Context, uri string) (Target, []Record, error) {
	target, err := ParseTarget(uri)
	if err != nil {
		return Target{}, nil, err
	}

	var (
		key     []byte
		records []Record
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		key, err = e.deriveKey(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = e.fetchRows(gctx, target.Domain)
		return err
	})
	err = g.Wait()
	defer clear(key)
	if err != nil {
		return Target{}, nil, err
	}

	selected, err := Select(records, key, target.MatchContext)
	if err != nil {
		return Target{}, nil, err
	}

	names := make([]string, len(selected))
	for i, c := range selected {
		names[i] = c.Name
	}
	e.logger().Info("%d of %d stored cookies apply to %s: %s",
		len(selected), len(records), target.Host, strings.Join(names, ", "))
	return target, selected, nil
}

// GetCookies extracts the cookies for uri and renders them in format.
func (e *Extractor) GetCookies(ctx context.Context, uri string, format Format) (any, error) {
	if format == "" {
		format = FormatObject
	}
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	target, selected, err := e.Extract(ctx, uri)
	if err != nil {
		return nil, err
	}
	return Render(format, selected, target.Domain, target.URI)
}
