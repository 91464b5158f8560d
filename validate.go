// SPDX-License-Identifier: EPL-2.0

package wdf

import "github.com/cheminfo/wdf-parser/enum"

var requiredKinds = []enum.BlockKind{
	enum.KindData,
	enum.KindXList,
	enum.KindYList,
	enum.KindOrigin,
}

// Validate checks that kinds holds every block a file of the given
// description needs. All missing kinds are reported in a single
// *CorruptFileError.
func Validate(kinds []enum.BlockKind, description enum.SpectraDescription) error {
	seen := make(map[enum.BlockKind]struct{}, len(kinds))
	for _, k := range kinds {
		seen[k] = struct{}{}
	}

	required := requiredKinds
	if description == enum.DescriptionSeries || description == enum.DescriptionMap {
		required = append(required[:len(required):len(required)], enum.KindMapArea)
	}

	var missing []enum.BlockKind
	for _, k := range required {
		if _, ok := seen[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &CorruptFileError{Missing: missing}
	}
	return nil
}
