// SPDX-License-Identifier: EPL-2.0

package sensfilt

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/sensfilt/formats/wav"
)

// OutputPath derives the filtered file name from the input path: the input
// without its extension, then suffix, then label, then ".wav".
//
//	OutputPath("take1.wav", "_sensFilt", "")      // take1_sensFilt.wav
//	OutputPath("mic/a.aiff", "_sensFilt", "_v2")  // mic/a_sensFilt_v2.wav
func OutputPath(input, suffix, label string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix + label + ".wav"
}

// sameFile reports whether a and b name the same file, either as equal
// absolute paths or, when both exist, as the same inode. The second check
// catches case-insensitive file systems.
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}

	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}

	return os.SameFile(fa, fb)
}

// writeOutput stores interleaved stereo samples at path. The data goes to
// a temporary file in the same directory first, so path is either the
// complete recording or untouched.
func writeOutput(path string, sampleRate int, samples []int16) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAudioEncode, err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	if err = wav.WriteWAV16(w, sampleRate, 2, samples); err != nil {
		return fmt.Errorf("%w: %w", ErrAudioEncode, err)
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrAudioEncode, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrAudioEncode, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrAudioEncode, err)
	}

	return nil
}
