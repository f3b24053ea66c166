package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD    FontName = "hud"
	Title  FontName = "title"
	Body   FontName = "body"
	Result FontName = "result"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}

	// UISource backs the text/v2 faces used by ebitenui widgets.
	UISource *text.GoTextFaceSource
)

// LoadAll parses the bundled Go fonts and builds every face the game draws with.
func LoadAll() error {
	if err := LoadFontWithSize(HUD, goregular.TTF, 30); err != nil {
		return err
	}
	if err := LoadFontWithSize(Body, goregular.TTF, 20); err != nil {
		return err
	}
	if err := LoadFontWithSize(Title, gobold.TTF, 56); err != nil {
		return err
	}
	if err := LoadFontWithSize(Result, gobold.TTF, 72); err != nil {
		return err
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load ui font: %w", err)
	}
	UISource = src
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// UIFace returns a text/v2 face of the given size for widgets.
func UIFace(size float64) text.Face {
	return &text.GoTextFace{Source: UISource, Size: size}
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
