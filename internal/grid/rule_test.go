package grid_test

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cubelife/internal/grid"
)

var _ = Describe("transition rule", func() {
	DescribeTable("live cells",
		func(neighbors int, survives bool) {
			Expect(grid.Next(true, neighbors)).To(Equal(survives))
		},
		Entry("0 neighbors", 0, false),
		Entry("4 neighbors", 4, false),
		Entry("5 neighbors", 5, true),
		Entry("6 neighbors", 6, true),
		Entry("7 neighbors", 7, true),
		Entry("8 neighbors", 8, false),
		Entry("26 neighbors", 26, false),
	)

	DescribeTable("dead cells",
		func(neighbors int, born bool) {
			Expect(grid.Next(false, neighbors)).To(Equal(born))
		},
		Entry("0 neighbors", 0, false),
		Entry("5 neighbors", 5, false),
		Entry("6 neighbors", 6, true),
		Entry("7 neighbors", 7, false),
		Entry("26 neighbors", 26, false),
	)
})

var _ = Describe("Grid", func() {
	var g *grid.Grid

	BeforeEach(func() {
		var err error
		g, err = grid.New(grid.DefaultSize)
		Expect(err).NotTo(HaveOccurred())
	})

	It("never generates life from an empty lattice", func() {
		for i := 0; i < 50; i++ {
			g.Tick()
		}
		Expect(g.Population()).To(BeZero())
		Expect(g.Generation()).To(BeEquivalentTo(50))
	})

	It("keeps neighbor counts within [0,26]", func() {
		g.Seed(rand.New(rand.NewSource(3)), 0.6)
		g.Each(func(x, y, z int, _ grid.Cell) {
			Expect(g.NeighborCount(x, y, z)).To(And(BeNumerically(">=", 0), BeNumerically("<=", 26)))
		})
	})

	It("advances the generation counter once per tick", func() {
		g.Seed(rand.New(rand.NewSource(5)), grid.DefaultDensity)
		g.Tick()
		g.Tick()
		Expect(g.Generation()).To(BeEquivalentTo(2))
	})

	It("resets the generation counter when reseeded", func() {
		g.Tick()
		g.Seed(rand.New(rand.NewSource(5)), grid.DefaultDensity)
		Expect(g.Generation()).To(BeZero())
	})
})
