package cookies

import (
	"fmt"

	"github.com/warpdl/chromecookies/pkg/credman/encryption"
)

// decryptRecords decrypts every record that only carries ciphertext. The
// first failure aborts: a result with silently missing cookies is worse
// than no result.
func decryptRecords(records []Record, key []byte) error {
	for i := range records {
		r := &records[i]
		if r.Value != "" || len(r.EncryptedValue) == 0 {
			continue
		}
		value, err := encryption.DecryptValue(key, r.EncryptedValue)
		if err != nil {
			return fmt.Errorf("error: cannot decrypt cookie %q for %s: %w", r.Name, r.HostKey, err)
		}
		r.Value = value
		r.EncryptedValue = nil
	}
	return nil
}

// Select decrypts records in place and returns the ones that apply to mc.
// records must already be in specificity order (longest path first, then
// oldest first); when several cookies share a name only the first one
// survives, so a more specific cookie shadows a less specific one.
func Select(records []Record, key []byte, mc MatchContext) ([]Record, error) {
	if err := decryptRecords(records, key); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(records))
	selected := make([]Record, 0, len(records))
	for _, r := range records {
		if !mc.Applies(r) {
			continue
		}
		if _, dup := seen[r.Name]; dup {
			continue
		}
		seen[r.Name] = struct{}{}
		selected = append(selected, r)
	}
	return selected, nil
}
