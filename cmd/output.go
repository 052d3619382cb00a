package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// writeResult prints a rendered cookie set. Strings are printed as is,
// Set-Cookie values one per line, objects as indented JSON and a jar as
// the Cookie header it would send to uri.
func writeResult(w io.Writer, result any, uri string) error {
	switch v := result.(type) {
	case string:
		if v == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, v)
		return err
	case []string:
		for _, line := range v {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case map[string]string:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case http.CookieJar:
		u, err := url.Parse(uri)
		if err != nil {
			return err
		}
		parts := make([]string, 0)
		for _, c := range v.Cookies(u) {
			parts = append(parts, c.Name+"="+c.Value)
		}
		return writeResult(w, strings.Join(parts, "; "), uri)
	default:
		return fmt.Errorf("error: cannot print result of type %T", result)
	}
}
