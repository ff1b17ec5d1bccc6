/*
Copyright © 2023 Kovalev Pavel kovalev5690@gmail.com

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/package hexcmd

import (
	"bufio"
	"errors"
	"io"
	"os"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/Pavel7004/goHidCmd/pkg/domain"
)

type TokenReader struct {
	Filename string

	log    zerolog.Logger
	reader *bufio.Reader
	file   *os.File
}

func NewTokenReader(filename string, log zerolog.Logger) *TokenReader {
	return &TokenReader{
		Filename: filename,
		log:      log,
	}
}

func (r *TokenReader) Open() error {
	f, err := os.Open(r.Filename)
	if err != nil {
		return &IOError{Path: r.Filename, Err: err}
	}
	r.reader = bufio.NewReader(f)
	r.file = f
	return nil
}

func (r *TokenReader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.reader = nil
	return err
}

// ReadTokens reads the rest of the file and returns every whitespace separated
// field in file order. A final line without a trailing newline is included.
func (r *TokenReader) ReadTokens() (domain.TokenList, error) {
	if r.reader == nil {
		return nil, ErrReaderNotOpen
	}

	tokens := make(domain.TokenList, 0, 16)
	var line uint

	for {
		buff, err := r.reader.ReadString('\n')
		if len(buff) > 0 {
			line++
			r.log.Debug().Uint("line", line).Str("buff", buff).Msg("Read line")
			tokens = append(tokens, splitLine(buff, line)...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			r.log.Error().Err(err).Str("file", r.Filename).Msg("Failed to read from file")
			return nil, &IOError{Path: r.Filename, Err: err}
		}
	}

	r.log.Debug().Uint("lines", line).Int("tokens", len(tokens)).Msg("Finished reading tokens")
	return tokens, nil
}

// splitLine cuts buff on runs of whitespace. Columns are 1-based byte offsets.
func splitLine(buff string, line uint) domain.TokenList {
	var tokens domain.TokenList

	start := -1
	for i, c := range buff {
		if !unicode.IsSpace(c) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, domain.Token{Text: buff[start:i], Line: line, Column: uint(start) + 1})
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, domain.Token{Text: buff[start:], Line: line, Column: uint(start) + 1})
	}

	return tokens
}
