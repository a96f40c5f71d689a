package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/orbitkit/refframe"
)

const (
	planetOrbitRadius = 10.0
	moonOrbitRadius   = 1.0
	planetPeriod      = 202.0
	moonPeriod        = 10.0
	deltaT            = 0.2
	steps             = 50
)

// SetupSystem builds the sun -> planet -> moon frame tree with the bodies
// at their initial orbital positions.
func SetupSystem() (sun, planet, moon *refframe.Frame2d) {
	sun = refframe.Origin2d()
	planet = refframe.NewFrame2d(mgl64.Vec2{planetOrbitRadius, 0}, refframe.NewRotation2d(0), sun)
	moon = refframe.NewFrame2d(mgl64.Vec2{0, moonOrbitRadius}, refframe.NewRotation2d(0), planet)

	return sun, planet, moon
}

func updatePlanet(planet *refframe.Frame2d, t float64) {
	phase := 2 * math.Pi * t / planetPeriod
	planet.LocalPosition = mgl64.Vec2{planetOrbitRadius * math.Cos(phase), planetOrbitRadius * math.Sin(phase)}
}

func updateMoon(moon *refframe.Frame2d, t float64) {
	phase := 2 * math.Pi * t / moonPeriod
	moon.LocalPosition = mgl64.Vec2{moonOrbitRadius * math.Cos(phase), moonOrbitRadius * math.Sin(phase)}
}

func main() {
	sun, planet, moon := SetupSystem()

	fmt.Println("Solar system frame tree")
	fmt.Println("=======================")
	fmt.Printf("Planet local position: %v (in sun frame)\n", planet.LocalPosition)
	fmt.Printf("Moon local position:   %v (in planet frame)\n", moon.LocalPosition)
	fmt.Println()

	// The moon's place in the universe: its frame origin seen from the sun.
	moonCenter := refframe.NewPosition2d(mgl64.Vec2{0, 0}, moon)
	inSun, err := moonCenter.ToFrame(sun)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Moon in sun frame: %v\n", inSun.Coordinates)

	// Directions ignore translation entirely: the moon's "north" stays
	// north no matter where the planet orbits.
	north := refframe.NewDirection2d(mgl64.Vec2{0, 1}, moon)
	northInSun, err := north.ToFrame(sun)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Moon north in sun frame: %v\n", northInSun.Coordinates)
	fmt.Println()

	fmt.Println("Animating orbits")
	fmt.Println("================")
	for step := 0; step <= steps; step++ {
		t := float64(step) * deltaT

		updatePlanet(planet, t)
		updateMoon(moon, t)

		inSun, err = moonCenter.ToFrame(sun)
		if err != nil {
			panic(err)
		}
		fmt.Printf("t = %5.1f s  planet: (%6.3f, %6.3f)  moon: (%6.3f, %6.3f)\n",
			t,
			planet.LocalPosition.X(), planet.LocalPosition.Y(),
			inSun.Coordinates.X(), inSun.Coordinates.Y())
	}
}
