package spline_test

import (
	"fmt"

	"honnef.co/go/spline"
)

func ExampleNew() {
	pts := []spline.Vec2{
		spline.Vec(0, 0),
		spline.Vec(1, 2),
		spline.Vec(3, 3),
		spline.Vec(4, 1),
		spline.Vec(6, 0),
	}
	s, err := spline.New(pts, 3)
	if err != nil {
		panic(err)
	}
	fmt.Println(s.SegmentCount(), s.MaxT())
	for t := 0.0; t <= s.MaxT(); t++ {
		p := s.Eval(t)
		fmt.Printf("%.4f %.4f\n", p.X, p.Y)
	}
	// Output:
	// 2 2
	// 1.1667 1.8333
	// 2.8333 2.5000
	// 4.1667 1.1667
}

func ExampleNewLooping() {
	square := []spline.Vec2{
		spline.Vec(0, 0),
		spline.Vec(1, 0),
		spline.Vec(1, 1),
		spline.Vec(0, 1),
	}
	s := spline.MustNewLooping(square, 3)
	fmt.Println(s.SegmentCount(), s.MaxT())

	// The curve closes on itself.
	for _, t := range []float64{0, s.MaxT()} {
		p := s.Eval(t)
		fmt.Printf("%.4f %.4f\n", p.X, p.Y)
	}
	d := s.Tangent(0).Tangent
	fmt.Printf("%.4f %.4f\n", d.X, d.Y)
	// Output:
	// 4 4
	// 0.1667 0.1667
	// 0.1667 0.1667
	// 0.5000 -0.5000
}

func ExampleBSpline_Partition() {
	pts := []spline.Vec2{
		spline.Vec(0, 0),
		spline.Vec(1, 0),
		spline.Vec(2, 0),
		spline.Vec(3, 0),
		spline.Vec(4, 0),
	}
	s := spline.MustNew(pts, 3)
	for _, t := range s.Partition(0.3, 1e-9) {
		fmt.Printf("%.4f %.4f\n", t, s.Eval(t).X)
	}
	// Output:
	// 0.0000 1.0000
	// 0.3000 1.3000
	// 0.6000 1.6000
	// 0.9000 1.9000
	// 1.2000 2.2000
	// 1.5000 2.5000
	// 1.8000 2.8000
}
