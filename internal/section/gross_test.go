package section

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func sampleChannel() *LippedChannel {
	s := &LippedChannel{Name: "C90x45x10x1.2", A: 90, B: 45, C: 10, T: 1.2, R: 1.6, Fy: 350}
	s.ApplyDefaults()
	return s
}

func Test_gross01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("gross01. lipped channel 90x45x10x1.2")

	g, err := sampleChannel().CalculateGross()
	if err != nil {
		tst.Errorf("%v", err)
		return
	}

	chk.Int(tst, "nodes", len(g.Nodes), 47)
	chk.Float64(tst, "A   ", 1e-9, g.Area, 229.68656358147481)
	chk.Float64(tst, "δ   ", 1e-12, g.Delta, 0.019769549986711713)
	chk.Float64(tst, "Ared", 1e-9, g.AreaReduced, 225.1457635814748)
	chk.Float64(tst, "zgx ", 1e-9, g.Zgx, 13.890824490055758)
	chk.Float64(tst, "zgy ", 1e-9, g.Zgy, 44.4)
	chk.Float64(tst, "Ix  ", 1e-5, g.Ix, 303849.72498483106)
	chk.Float64(tst, "Iy  ", 1e-5, g.Iy, 61742.542503465986)
	chk.Float64(tst, "Ixy ", 1e-6, g.Ixy, 0)
	chk.Float64(tst, "xsc ", 1e-6, g.Xsc, -20.560592133881794)
	chk.Float64(tst, "ysc ", 1e-6, g.Ysc, 44.4)
	chk.Float64(tst, "It  ", 1e-9, g.It, 110.24955051910779)
	chk.Float64(tst, "xo  ", 1e-6, g.Xo, 34.451416623937554)
	chk.Float64(tst, "Wx  ", 1e-6, g.Wx, 6572.877935399965)
	chk.Float64(tst, "Wy  ", 1e-6, g.Wy, 1982.712559999908)
	chk.Float64(tst, "Cw  ", 1e-6*99298913.01201928, g.Cw, 99298913.01201928)
}

func Test_gross02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("gross02. principal axes of a symmetric channel")

	g, err := sampleChannel().CalculateGross()
	if err != nil {
		tst.Errorf("%v", err)
		return
	}
	chk.Float64(tst, "I1", 1e-5, g.I1, g.Ix)
	chk.Float64(tst, "I2", 1e-5, g.I2, g.Iy)
	if math.Abs(g.Alpha) > 1e-9 {
		tst.Errorf("major axis must be horizontal, got α = %g", g.Alpha)
	}
}

func Test_gross03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("gross03. centerline nodes")

	s := sampleChannel()
	cl := s.Centerline()
	nodes := GrossNodes(cl)

	first, last := nodes[0], nodes[len(nodes)-1]
	chk.Float64(tst, "bottom lip tip x", 1e-12, first.X, cl.Flange)
	chk.Float64(tst, "bottom lip tip y", 1e-12, first.Y, cl.Lip)
	chk.Float64(tst, "top lip tip x", 1e-12, last.X, cl.Flange)
	chk.Float64(tst, "top lip tip y", 1e-12, last.Y, cl.Web-cl.Lip)

	for i, p := range nodes {
		if p.X < -1e-9 || p.X > cl.Flange+1e-9 || p.Y < -1e-9 || p.Y > cl.Web+1e-9 {
			tst.Errorf("node %d (%g, %g) outside the centerline box", i, p.X, p.Y)
		}
	}
}
