package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Klingon-tech/airgap/internal/batch"
	"github.com/Klingon-tech/airgap/internal/keygen"
	"github.com/Klingon-tech/airgap/internal/log"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("stdin is not a terminal")

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// readSecret prompts on stderr and reads one line from the terminal without
// echo.
func readSecret(prompt string) ([]byte, error) {
	if !stdinIsTerminal() {
		return nil, errNoTerminal
	}
	fmt.Fprint(os.Stderr, prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", strings.TrimSuffix(prompt, ": "), err)
	}
	return b, nil
}

// readInput returns the whole content of path, or stdin for "-".
func readInput(path string) ([]byte, error) {
	in, err := batch.OpenInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// readSeed loads the seed words. With "-" on a terminal the words are typed
// without echo.
func readSeed(path string) (keygen.Seed, error) {
	var (
		data []byte
		err  error
	)
	if path == batch.StdStream && stdinIsTerminal() {
		data, err = readSecret("Seed words: ")
	} else {
		data, err = readInput(path)
	}
	if err != nil {
		return keygen.Seed{}, err
	}
	defer zero(data)

	seed, err := keygen.ParseSeed(string(data))
	if err != nil {
		return keygen.Seed{}, fmt.Errorf("seed %s: %w", path, err)
	}
	if seed.WordCount() == 0 {
		log.CLI.Warn().Str("path", path).Msg("Seed contains no words; keys are derived from the index alone")
	}
	log.Keygen.Debug().Object("seed", seed).Msg("Seed loaded")
	return seed, nil
}

// passphraseSource reads a passphrase from a file or the terminal.
type passphraseSource struct {
	file string
}

func (p *passphraseSource) fromFile() ([]byte, error) {
	data, err := readInput(p.file)
	if err != nil {
		return nil, err
	}
	line, _, _ := bytes.Cut(data, []byte("\n"))
	pass := bytes.Clone(bytes.TrimSuffix(line, []byte("\r")))
	zero(data)
	if len(pass) == 0 {
		return nil, fmt.Errorf("passphrase file %s is empty", p.file)
	}
	return pass, nil
}

// read returns the passphrase for opening a vault.
func (p *passphraseSource) read() ([]byte, error) {
	if p.file != "" {
		return p.fromFile()
	}
	pass, err := readSecret("Passphrase: ")
	if err != nil {
		return nil, fmt.Errorf("%w (use --passphrase-file)", err)
	}
	if len(pass) == 0 {
		return nil, errors.New("empty passphrase")
	}
	return pass, nil
}

// readNew returns a new passphrase, asking twice on a terminal.
func (p *passphraseSource) readNew() ([]byte, error) {
	if p.file != "" {
		return p.fromFile()
	}
	pass, err := p.read()
	if err != nil {
		return nil, err
	}
	again, err := readSecret("Repeat passphrase: ")
	if err != nil {
		zero(pass)
		return nil, err
	}
	defer zero(again)
	if !bytes.Equal(pass, again) {
		zero(pass)
		return nil, errors.New("passphrases do not match")
	}
	return pass, nil
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
