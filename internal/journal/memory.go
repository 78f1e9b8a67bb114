package journal

// MemoryBackend holds the journal blob in memory. It backs tests and any
// run that should not touch disk.
type MemoryBackend struct {
	blob []byte

	// SaveErr, when set, makes every Save fail with it.
	SaveErr error
}

func (b *MemoryBackend) Load() ([]byte, error) {
	return b.blob, nil
}

func (b *MemoryBackend) Save(raw []byte) error {
	if b.SaveErr != nil {
		return b.SaveErr
	}
	b.blob = append([]byte(nil), raw...)
	return nil
}
