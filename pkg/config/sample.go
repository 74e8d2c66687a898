package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

//go:embed rdsecho.properties.sample
var sample []byte

// ErrFileExists is returned when writing the sample would replace a file
var ErrFileExists = errors.New("file already exists")

// Sample returns the documented sample properties file
func Sample() []byte {
	return sample
}

// WriteSample writes the sample properties to path, an existing file is never
// overwritten
func WriteSample(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}

		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer f.Close()

	_, err = f.Write(sample)
	if err != nil {
		return fmt.Errorf("unable to write sample to %s: %w", path, err)
	}

	return nil
}

// WriteSampleOpts writes an export statement for every property to w. Values
// come from the environment or the properties file at path when set, any
// other value is taken from the sample.
func WriteSampleOpts(w io.Writer, path string) error {
	current, err := newViper(path)
	if err != nil {
		return err
	}

	defaults, err := newProperties()
	if err != nil {
		return err
	}

	err = defaults.ReadConfig(strings.NewReader(string(sample)))
	if err != nil {
		return fmt.Errorf("unable to read sample properties: %w", err)
	}

	for _, p := range Properties {
		v := current.GetString(Prefix + p)
		if v == "" {
			v = defaults.GetString(Prefix + p)
		}

		fmt.Fprintf(w, "export %s=%q\n", EnvName(p), v)
	}

	return nil
}
