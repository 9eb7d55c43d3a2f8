package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	LabelFont  *text.GoTextFace
	StatusFont *text.GoTextFace
	DigitFont  *text.GoTextFace
)

func init() {
	regular := loadFont(goregular.TTF)
	mono := loadFont(gomonobold.TTF)

	LabelFont = &text.GoTextFace{
		Source: regular,
		Size:   18,
	}
	StatusFont = &text.GoTextFace{
		Source: regular,
		Size:   24,
	}
	// Fixed-width digits keep the countdown from jittering as it changes.
	DigitFont = &text.GoTextFace{
		Source: mono,
		Size:   56,
	}
}

func loadFont(ttf []byte) *text.GoTextFaceSource {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}
	return source
}
