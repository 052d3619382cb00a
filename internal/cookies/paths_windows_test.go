//go:build windows

package cookies

import (
	"path/filepath"
	"testing"
)

func TestUserDataDirForEnv(t *testing.T) {
	edge, _ := ParseBrowser("edge")
	want := filepath.Join(`C:\Users\u\AppData\Local`, "Microsoft", "Edge", "User Data")
	if got := userDataDirForEnv(edge, `C:\Users\u\AppData\Local`); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
