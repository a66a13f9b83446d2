package vault

import (
	"path"
	"strings"
)

// ResolveLink resolves a wiki-link target to a document id, or "" when no
// document matches. Targets containing a slash resolve as vault-relative
// paths (the .md extension is optional). Bare names match any document
// with that basename anywhere in the vault; when several match, the first
// in sorted id order wins, mirroring how the host platform picks the
// shortest-ambiguity note.
func (v *Vault) ResolveLink(target string) string {
	target = strings.TrimSpace(target)
	if target == "" {
		return ""
	}

	if !strings.HasSuffix(target, MarkdownExt) {
		target += MarkdownExt
	}

	if strings.Contains(target, "/") {
		id := path.Clean(target)

		exists, err := v.fsys.Exists(v.Abs(id))
		if err != nil || !exists {
			return ""
		}

		return id
	}

	ids, err := v.List()
	if err != nil {
		v.log.WithError(err).Debug("link resolution scan failed")

		return ""
	}

	for _, id := range ids {
		if path.Base(id) == target {
			return id
		}
	}

	return ""
}
