package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body    FontName = "body"
	Title   FontName = "title"
	Message FontName = "message"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts    = map[FontName]font.Face{}
	loadOnce sync.Once
	loadErr  error
)

// Load parses the embedded Go fonts and registers every face. It is safe to
// call more than once.
func Load() error {
	loadOnce.Do(func() {
		if loadErr = LoadFontWithSize(Body, goregular.TTF, 16); loadErr != nil {
			return
		}
		if loadErr = LoadFontWithSize(Title, gobold.TTF, 32); loadErr != nil {
			return
		}
		loadErr = LoadFontWithSize(Message, gobold.TTF, 48)
	})
	return loadErr
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
