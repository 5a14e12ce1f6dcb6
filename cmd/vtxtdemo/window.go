package main

import "image/color"

import "github.com/hajimehoshi/ebiten/v2"

import "github.com/vultureui/vtxt/surface/ebitensurf"

type game struct {
	demo   *demo
	width  int
	height int
	err    error // first draw error, returned by Update
}

func (self *game) Layout(int, int) (int, int) { return self.width, self.height }
func (self *game) Update() error              { return self.err }

func (self *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{40, 44, 52, 255})
	err := self.demo.draw(ebitensurf.Wrap(screen))
	if err != nil && self.err == nil {
		self.err = err
	}
}

func runWindow(demo *demo) error {
	width, height := demo.canvasSize()
	ebiten.SetWindowTitle("vtxt demo")
	ebiten.SetWindowSize(width*2, height*2)
	return ebiten.RunGame(&game{demo: demo, width: width, height: height})
}
