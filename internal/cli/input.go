package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// errNetworkFile indicates a network file without a usable capacity matrix.
var errNetworkFile = errors.New("cli: invalid network file")

// networkFile is the TOML layout accepted by solve and render:
//
//	source = 0          # optional, default 0
//	sink = 3            # optional, default n-1
//	capacity = [
//	  [0, 3, 2, 0],
//	  ...
//	]
type networkFile struct {
	Source   *int      `toml:"source"`
	Sink     *int      `toml:"sink"`
	Capacity [][]int64 `toml:"capacity"`
}

// loadNetwork reads path and resolves default endpoints. Matrix shape and
// endpoint ranges are left to flow.MaxFlow to validate.
func loadNetwork(path string) (capacity [][]int64, source, sink int, err error) {
	var f networkFile
	if _, err = toml.DecodeFile(path, &f); err != nil {
		return nil, 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(f.Capacity) == 0 {
		return nil, 0, 0, fmt.Errorf("%s: missing capacity: %w", path, errNetworkFile)
	}
	source, sink = 0, len(f.Capacity)-1
	if f.Source != nil {
		source = *f.Source
	}
	if f.Sink != nil {
		sink = *f.Sink
	}
	return f.Capacity, source, sink, nil
}
