package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Faultbox/boneproxy/internal/engine/physics"
)

// Recorder writes a stream of msgpack-encoded collider snapshots.
type Recorder struct {
	buf    *bufio.Writer
	enc    *msgpack.Encoder
	file   *os.File
	frames int
}

// NewRecorder records to w.
func NewRecorder(w io.Writer) *Recorder {
	buf := bufio.NewWriter(w)
	return &Recorder{buf: buf, enc: msgpack.NewEncoder(buf)}
}

// CreateRecorder creates (or truncates) path and records to it.
func CreateRecorder(path string) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create recording %s: %w", path, err)
	}
	r := NewRecorder(f)
	r.file = f
	return r, nil
}

// Record appends one snapshot.
func (r *Recorder) Record(snap physics.Snapshot) error {
	if err := r.enc.Encode(&snap); err != nil {
		return fmt.Errorf("record frame %d: %w", snap.Frame, err)
	}
	r.frames++
	return nil
}

// Frames returns how many snapshots were recorded.
func (r *Recorder) Frames() int {
	return r.frames
}

// Close flushes buffered snapshots and closes the file, if any.
func (r *Recorder) Close() error {
	err := r.buf.Flush()
	if r.file != nil {
		err = errors.Join(err, r.file.Close())
	}
	return err
}

// ReadSnapshots decodes every snapshot in a recording.
func ReadSnapshots(rd io.Reader) ([]physics.Snapshot, error) {
	dec := msgpack.NewDecoder(bufio.NewReader(rd))
	var snaps []physics.Snapshot
	for {
		var snap physics.Snapshot
		if err := dec.Decode(&snap); err != nil {
			if errors.Is(err, io.EOF) {
				return snaps, nil
			}
			return snaps, fmt.Errorf("read snapshot %d: %w", len(snaps), err)
		}
		snaps = append(snaps, snap)
	}
}
