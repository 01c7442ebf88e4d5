package dmp_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/skodra/quatdmp/internal/dmp"
	"github.com/skodra/quatdmp/internal/quat"
)

// minJerkDemo rotates about axis through angle radians with a minimum-jerk
// angle profile, sampled at count points.
func minJerkDemo(axis quat.Vec, angle float64, count int) []quat.Quaternion {
	demo := make([]quat.Quaternion, count)
	for i := range demo {
		s := float64(i) / float64(count-1)
		p := s * s * s * (10 + s*(-15+6*s))
		demo[i] = quat.FromAxisAngle(axis, angle*p)
	}
	return demo
}

func meanAngularError(a, b []quat.Quaternion) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i].AngleTo(b[i])
	}
	return sum / float64(len(a))
}

var _ = Describe("Quaternion DMP", func() {
	var d *dmp.DMP

	BeforeEach(func() {
		var err error
		d, err = dmp.New(dmp.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
	})

	Context("trained on a smooth demonstration", func() {
		axis := quat.Vec{1, 1, 0}.Normalize()
		angle := 2 * math.Pi / 3

		var desired []quat.Quaternion

		BeforeEach(func() {
			var err error
			desired, err = d.Imitate(minJerkDemo(axis, angle, 50))
			Expect(err).NotTo(HaveOccurred())
			Expect(desired).To(HaveLen(d.Config().Steps()))
		})

		It("reproduces the demonstration at tau=1", func() {
			tr, err := d.Rollout(1.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Len()).To(Equal(d.Config().Steps()))

			Expect(meanAngularError(tr.Orientations, desired)).To(BeNumerically("<", 0.15))

			goal := d.Model().Goal
			final := tr.Orientations[tr.Len()-1]
			Expect(final.AngleTo(goal)).To(BeNumerically("<", 0.2))
		})

		It("starts at the demonstrated initial state", func() {
			tr, err := d.Rollout(1.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(tr.Orientations[0].AngleTo(desired[0])).To(BeNumerically("<", 1e-12))
			Expect(tr.Velocities[0]).To(Equal(d.Model().DQ0))
			Expect(tr.Accelerations[0]).To(Equal(d.Model().DDQ0))
		})

		It("keeps output quaternions close to unit norm over the horizon", func() {
			tr, err := d.Rollout(1.0)
			Expect(err).NotTo(HaveOccurred())
			for _, q := range tr.Orientations {
				Expect(math.Abs(q.Norm() - 1)).To(BeNumerically("<", 1e-6))
			}
		})

		It("reaches the goal in roughly half the steps at tau=2", func() {
			goal := d.Model().Goal
			const proximity = 0.3

			firstWithin := func(tau float64) int {
				tr, err := d.Rollout(tau)
				Expect(err).NotTo(HaveOccurred())
				for i, q := range tr.Orientations {
					if q.AngleTo(goal) < proximity {
						return i
					}
				}
				return -1
			}

			n1 := firstWithin(1.0)
			n2 := firstWithin(2.0)
			Expect(n1).To(BeNumerically(">", 0))
			Expect(n2).To(BeNumerically(">", 0))
			Expect(n2).To(BeNumerically("<", n1*3/4))
		})

		It("is deterministic across repeated rollouts", func() {
			a, err := d.Rollout(1.0)
			Expect(err).NotTo(HaveOccurred())
			b, err := d.Rollout(1.0)
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Orientations).To(Equal(b.Orientations))
			Expect(a.Velocities).To(Equal(b.Velocities))
		})
	})

	Context("trained on a constant demonstration", func() {
		fixed := quat.FromAxisAngle(quat.Vec{0, 1, 0}, 0.9)

		BeforeEach(func() {
			demo := make([]quat.Quaternion, 100)
			for i := range demo {
				demo[i] = fixed
			}
			_, err := d.Imitate(demo)
			Expect(err).NotTo(HaveOccurred())
		})

		It("learns near-zero weights", func() {
			w := d.Model().Weights
			rows, cols := w.Dims()
			for i := 0; i < rows; i++ {
				for j := 0; j < cols; j++ {
					Expect(math.Abs(w.At(i, j))).To(BeNumerically("<", 1e-6))
				}
			}
		})

		It("stays at the demonstrated orientation", func() {
			tr, err := d.Rollout(1.0)
			Expect(err).NotTo(HaveOccurred())
			for _, q := range tr.Orientations {
				Expect(q.AngleTo(fixed)).To(BeNumerically("<", 1e-6))
			}
			for _, v := range tr.Velocities {
				Expect(v.Norm()).To(BeNumerically("<", 1e-6))
			}
		})
	})

	Context("trained on a two-point demonstration", func() {
		goal := quat.FromAxisAngle(quat.Vec{0, 0, 1}, math.Pi/2)

		BeforeEach(func() {
			_, err := d.Imitate([]quat.Quaternion{quat.Identity(), goal})
			Expect(err).NotTo(HaveOccurred())
		})

		It("converges toward the goal with shrinking angular error", func() {
			tr, err := d.Rollout(1.0)
			Expect(err).NotTo(HaveOccurred())

			n := tr.Len()
			start := tr.Orientations[0].AngleTo(goal)
			mid := tr.Orientations[n/2].AngleTo(goal)
			final := tr.Orientations[n-1].AngleTo(goal)

			Expect(mid).To(BeNumerically("<", start))
			Expect(final).To(BeNumerically("<", mid))
			Expect(final).To(BeNumerically("<", 0.3))
		})
	})
})
