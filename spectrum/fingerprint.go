// SPDX-License-Identifier: EPL-2.0

package spectrum

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the bit patterns of values. Equal spectra always
// share a fingerprint; -0 and +0 do not.
func Fingerprint(values []float32) uint64 {
	buf := make([]byte, 0, 4*len(values))
	for _, v := range values {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return xxhash.Sum64(buf)
}
