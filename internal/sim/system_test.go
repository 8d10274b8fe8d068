package sim

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/body"
	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/gravity"
)

var _ = Describe("System", func() {
	var (
		spy *spyAccumulator
		sys *System
	)

	BeforeEach(func() {
		spy = &spyAccumulator{inner: gravity.NewDirect(dynamo.G)}
		var err error
		sys, err = New(innerPlanets(), dynamo.SecondsPerDay, WithAccumulator(spy))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Step", func() {
		It("shows every acceleration pass a single position snapshot", func() {
			for i := 0; i < 5; i++ {
				Expect(sys.Step()).To(Succeed())
			}

			// one priming pass, then two passes per step
			Expect(spy.passes).To(HaveLen(11))
			for _, pass := range spy.passes {
				Expect(pass).To(HaveLen(5))
				for _, seen := range pass[1:] {
					Expect(seen).To(Equal(pass[0]))
				}
			}
		})

		It("evaluates the velocity pass at the committed positions", func() {
			Expect(sys.Step()).To(Succeed())

			velocityPass := spy.passes[2]
			for i, b := range sys.Bodies() {
				Expect(velocityPass[0][i]).To(Equal(b.Position))
			}
		})

		It("primes only once", func() {
			Expect(sys.Step()).To(Succeed())
			Expect(sys.Step()).To(Succeed())
			Expect(spy.passes).To(HaveLen(5))
		})

		It("keeps the Sun out of orbit detection", func() {
			var names []string
			sys.AddOrbitSink(OrbitFunc(func(name string, _ float64) {
				names = append(names, name)
			}))

			_, err := sys.Run(context.Background(), 800)
			Expect(err).NotTo(HaveOccurred())
			Expect(names).NotTo(ContainElement(body.SunName))
			Expect(names).To(ContainElements("Mercury", "Venus", "Earth", "Mars"))
		})
	})

	Describe("AddBody", func() {
		It("rejects a duplicate name", func() {
			dup := body.New("Earth", 1, r2.Vec{X: 9e11}, r2.Vec{})
			Expect(sys.AddBody(dup)).To(MatchError(dynamo.ErrParameterBounds))
			Expect(sys.Bodies()).To(HaveLen(5))
		})

		It("updates the total energy", func() {
			before := sys.TotalEnergy()
			far := body.New("Comet", 1e15, r2.Vec{X: 5e12}, r2.Vec{Y: 1000})
			Expect(sys.AddBody(far)).To(Succeed())
			Expect(sys.TotalEnergy()).NotTo(Equal(before))
		})
	})

	Describe("Snapshot", func() {
		It("copies the state rather than aliasing it", func() {
			frame := sys.Snapshot()
			Expect(sys.Step()).To(Succeed())
			Expect(frame.Time).To(BeZero())
			Expect(frame.Bodies[3].X).NotTo(Equal(sys.Bodies()[3].Position.X))
		})
	})
})
