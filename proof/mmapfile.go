package proof

import (
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"

	"github.com/xDarkicex/prcheck/core"
)

// mappedFile holds an open file descriptor and its memory-mapped bytes.
// Closing it unmaps and closes the descriptor together, so callers only
// need one defer.
type mappedFile struct {
	f   *os.File
	m   mmap.MMap
}

// openMapped memory-maps path read-only, matching AKJUS-bsc-erigon's use
// of mmap-go for its snapshot files: the CNF and proof files are treated
// the same way, as one contiguous byte slice scanned with an explicit
// cursor rather than copied into line buffers.
func openMapped(path string) (*mappedFile, []byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, core.Wrap(core.KindParse, "proof.openMapped", errors.Wrapf(err, "open %s", path))
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, core.Wrap(core.KindParse, "proof.openMapped", errors.Wrapf(err, "stat %s", path))
	}
	if info.Size() == 0 {
		f.Close()
		return nil, nil, core.NewVerifierError(core.KindParse, "proof.openMapped", "%s is empty", path)
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, nil, core.Wrap(core.KindParse, "proof.openMapped", errors.Wrapf(err, "mmap %s", path))
	}
	return &mappedFile{f: f, m: m}, []byte(m), nil
}

func (mf *mappedFile) Close() error {
	if mf == nil {
		return nil
	}
	err := mf.m.Unmap()
	if cerr := mf.f.Close(); err == nil {
		err = cerr
	}
	return err
}
