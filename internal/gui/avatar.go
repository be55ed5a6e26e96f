package gui

import rl "github.com/gen2brain/raylib-go/raylib"

type avatar struct {
	x, y  float32
	size  float32
	speed float32
}

func newAvatar(x, y float32) avatar {
	return avatar{x: x, y: y, size: 40, speed: 4}
}

func (a *avatar) setPos(x, y float32) {
	a.x = x
	a.y = y
}

func (a *avatar) move(width, height int32) {
	if rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft) {
		a.x -= a.speed
	}
	if rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight) {
		a.x += a.speed
	}
	if rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp) {
		a.y -= a.speed
	}
	if rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown) {
		a.y += a.speed
	}
	a.clamp(width, height)
}

func (a *avatar) clamp(width, height int32) {
	if a.x < 0 {
		a.x = 0
	}
	if a.y < 0 {
		a.y = 0
	}
	if a.x > float32(width)-a.size {
		a.x = float32(width) - a.size
	}
	if a.y > float32(height)-a.size {
		a.y = float32(height) - a.size
	}
}

func (a *avatar) rect() rl.Rectangle {
	return rl.NewRectangle(a.x, a.y, a.size, a.size)
}

func (a *avatar) draw(outfit int) {
	clr := outfitColor(outfit)
	rl.DrawRectangleRec(a.rect(), clr)
	rl.DrawRectangleLinesEx(a.rect(), 2, colorBorder)
}
