// SPDX-License-Identifier: MIT
// Package: transitpath/builder
//
// id_fn_names.go - street-name station IDs backed by gofakeit.

package builder

import (
	"fmt"

	"github.com/brianvoe/gofakeit"
)

// StreetNameIDFn returns an IDFn producing plausible street names
// ("Ridge Port", "Mill Burgh", ...). Names are generated in index order from
// seed and cached, so the same index always maps to the same name and every
// name is unique. gofakeit draws from a package-level source: the returned
// IDFn is not safe for concurrent use, and must not be interleaved with other
// gofakeit callers.
func StreetNameIDFn(seed int64) IDFn {
	var (
		names []string
		taken = map[string]bool{CenterStationID: true}
	)
	seeded := false

	return func(idx int) string {
		if !seeded {
			gofakeit.Seed(seed)
			seeded = true
		}
		for len(names) <= idx {
			base := gofakeit.StreetName()
			name := base
			for n := len(names); taken[name]; n++ {
				name = fmt.Sprintf("%s %d", base, n)
			}
			taken[name] = true
			names = append(names, name)
		}

		return names[idx]
	}
}

// WithStreetNames is WithIDScheme(StreetNameIDFn(seed)).
func WithStreetNames(seed int64) BuilderOption {
	return WithIDScheme(StreetNameIDFn(seed))
}
