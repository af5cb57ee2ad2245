package animate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/softviz/internal/animate"
	"github.com/san-kum/softviz/internal/transform"
)

var _ = Describe("Lerp", func() {
	It("is linear between the endpoints", func() {
		Expect(animate.Lerp(2, 4, 0)).To(Equal(2.0))
		Expect(animate.Lerp(2, 4, 0.5)).To(Equal(3.0))
		Expect(animate.Lerp(2, 4, 1)).To(Equal(4.0))
		Expect(animate.Lerp(1, -1, 0.25)).To(Equal(0.5))
	})
})

var _ = Describe("Controller", func() {
	var (
		original transform.Vector
		target   transform.Vector
		ctrl     *animate.Controller
	)

	BeforeEach(func() {
		original = transform.Vector{0.2, 0.4, 0.6}
		target = transform.Vector{0.1, 0.3, 0.9}
		var err error
		ctrl, err = animate.New(original, target)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("Initialize", func() {
		It("starts idle showing the original values", func() {
			Expect(ctrl.Phase()).To(Equal(animate.Idle))
			Expect(ctrl.Running()).To(BeFalse())
			Expect(ctrl.Current()).To(Equal(original))
			Expect(ctrl.Index()).To(Equal(0))
			Expect(ctrl.Progress()).To(Equal(0.0))
		})

		It("copies its inputs", func() {
			original[0] = 42
			Expect(ctrl.Original()[0]).To(Equal(0.2))
			Expect(ctrl.Current()[0]).To(Equal(0.2))
		})

		It("rejects mismatched lengths and keeps the previous state", func() {
			ctrl.Start()
			ctrl.Tick(0.25)
			err := ctrl.Initialize(transform.Vector{1, 2}, transform.Vector{1})
			Expect(err).To(MatchError(animate.ErrLengthMismatch))
			Expect(ctrl.Running()).To(BeTrue())
			Expect(ctrl.Original()).To(Equal(transform.Vector{0.2, 0.4, 0.6}))
		})

		It("supersedes an in-flight animation", func() {
			ctrl.Start()
			for i := 0; i < 10; i++ {
				ctrl.Tick(0.25)
			}
			Expect(ctrl.Index()).To(BeNumerically(">", 0))

			next := transform.Vector{5, 6}
			Expect(ctrl.Initialize(next, transform.Vector{1, 1})).To(Succeed())
			Expect(ctrl.Phase()).To(Equal(animate.Idle))
			Expect(ctrl.Index()).To(Equal(0))
			Expect(ctrl.Progress()).To(Equal(0.0))
			Expect(ctrl.Current()).To(Equal(next))
		})
	})

	Describe("Tick", func() {
		It("does nothing unless interpolating", func() {
			Expect(ctrl.Tick(0.5)).To(Equal(original))
			Expect(ctrl.Index()).To(Equal(0))
			Expect(ctrl.Progress()).To(Equal(0.0))
		})

		It("interpolates the active column and leaves it at the last interpolated value", func() {
			ctrl.Start()

			Expect(ctrl.Tick(0.25)[0]).To(Equal(0.2))
			Expect(ctrl.Progress()).To(Equal(0.25))

			Expect(ctrl.Tick(0.25)[0]).To(BeNumerically("~", animate.Lerp(0.2, 0.1, 0.25), 1e-12))
			ctrl.Tick(0.25)
			cur := ctrl.Tick(0.25)

			Expect(ctrl.Index()).To(Equal(1))
			Expect(ctrl.Progress()).To(Equal(0.0))
			Expect(cur[0]).To(Equal(animate.Lerp(0.2, 0.1, 0.75)))
			Expect(cur[1]).To(Equal(0.4))
			Expect(cur[2]).To(Equal(0.6))
		})

		It("animates columns strictly left to right", func() {
			ctrl.Start()
			for tick := 0; tick < 12; tick++ {
				cur := ctrl.Tick(0.25)
				active := ctrl.Index()
				for j := active + 1; j < len(cur); j++ {
					Expect(cur[j]).To(Equal(original[j]), "column %d moved before column %d finished", j, active)
				}
				for j := 0; j < active && j < len(cur); j++ {
					Expect(cur[j]).To(Equal(animate.Lerp(original[j], target[j], 0.75)))
				}
			}
		})

		It("is monotonic and resets progress exactly when the column advances", func() {
			ctrl.Start()
			prevIndex, prevProgress := ctrl.Index(), ctrl.Progress()
			for tick := 0; tick < 400; tick++ {
				ctrl.Tick(animate.DefaultStep)
				idx, prog := ctrl.Index(), ctrl.Progress()
				Expect(idx).To(BeNumerically(">=", prevIndex))
				if idx > prevIndex {
					Expect(idx).To(Equal(prevIndex + 1))
					Expect(prog).To(Equal(0.0))
				} else if idx < len(original) {
					Expect(prog).To(BeNumerically(">", prevProgress))
				}
				prevIndex, prevProgress = idx, prog
			}
			Expect(ctrl.Done()).To(BeTrue())
		})

		It("takes about one hundred ticks per column at the default step", func() {
			ctrl.Start()
			ticks := 0
			for ctrl.Index() == 0 {
				ctrl.Tick(animate.DefaultStep)
				ticks++
				Expect(ticks).To(BeNumerically("<=", 101))
			}
			Expect(ticks).To(BeNumerically(">=", 100))
		})

		It("keeps running without mutating values once every column is done", func() {
			ctrl.Start()
			for !ctrl.Done() {
				ctrl.Tick(0.5)
			}
			final := ctrl.Current()
			for j := range final {
				Expect(final[j]).To(Equal(animate.Lerp(original[j], target[j], 0.5)))
			}

			for i := 0; i < 50; i++ {
				Expect(ctrl.Tick(0.5)).To(Equal(final))
			}
			Expect(ctrl.Running()).To(BeTrue())
			Expect(ctrl.Index()).To(Equal(len(original)))
			Expect(ctrl.Fraction()).To(Equal(1.0))
		})

		It("writes the pre-increment progress last at the default step", func() {
			unit, err := animate.New(transform.Vector{0}, transform.Vector{1})
			Expect(err).NotTo(HaveOccurred())
			unit.Start()
			for !unit.Done() {
				unit.Tick(animate.DefaultStep)
			}
			last := unit.Current()[0]
			Expect(last).To(BeNumerically("<", 1.0))
			Expect(last).To(BeNumerically("~", 0.99, 0.011))
		})

		It("ignores non-positive steps", func() {
			ctrl.Start()
			ctrl.Tick(0)
			ctrl.Tick(-1)
			Expect(ctrl.Progress()).To(Equal(0.0))
			Expect(ctrl.Index()).To(Equal(0))
		})

		It("returns a copy the caller cannot use to mutate state", func() {
			ctrl.Start()
			cur := ctrl.Tick(0.25)
			cur[2] = 100
			Expect(ctrl.Current()[2]).To(Equal(0.6))
		})

		It("is a no-op on an empty vector", func() {
			empty, err := animate.New(transform.Vector{}, transform.Vector{})
			Expect(err).NotTo(HaveOccurred())
			empty.Start()
			Expect(empty.Tick(animate.DefaultStep)).To(BeEmpty())
			Expect(empty.Done()).To(BeTrue())
			Expect(empty.Running()).To(BeTrue())
		})
	})

	Describe("Start and Stop", func() {
		It("freezes values on stop and resumes from the same column", func() {
			ctrl.Start()
			for i := 0; i < 6; i++ {
				ctrl.Tick(0.25)
			}
			ctrl.Stop()
			Expect(ctrl.Phase()).To(Equal(animate.Stopped))
			Expect(ctrl.Running()).To(BeFalse())

			frozen := ctrl.Current()
			idx, prog := ctrl.Index(), ctrl.Progress()
			ctrl.Tick(0.25)
			Expect(ctrl.Current()).To(Equal(frozen))

			ctrl.Start()
			Expect(ctrl.Index()).To(Equal(idx))
			Expect(ctrl.Progress()).To(Equal(prog))
			ctrl.Tick(0.25)
			Expect(ctrl.Progress()).To(BeNumerically(">", prog))
		})

		It("ignores stop while idle", func() {
			ctrl.Stop()
			Expect(ctrl.Phase()).To(Equal(animate.Idle))
		})
	})

	Describe("Reset", func() {
		It("restores the original values bit for bit", func() {
			ctrl.Start()
			for i := 0; i < 9; i++ {
				ctrl.Tick(0.25)
			}
			ctrl.Reset()
			Expect(ctrl.Phase()).To(Equal(animate.Idle))
			Expect(ctrl.Current().Equal(original)).To(BeTrue())
			Expect(ctrl.Index()).To(Equal(0))
			Expect(ctrl.Progress()).To(Equal(0.0))
		})
	})

	Describe("Sync", func() {
		It("reinitializes when the vector was resized", func() {
			ctrl.Start()
			ctrl.Tick(0.25)
			changed, err := ctrl.Sync(transform.Vector{1, 2, 3, 4}, transform.Vector{4, 3, 2, 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeTrue())
			Expect(ctrl.Len()).To(Equal(4))
			Expect(ctrl.Phase()).To(Equal(animate.Idle))
		})

		It("leaves a same-length animation alone", func() {
			ctrl.Start()
			ctrl.Tick(0.25)
			changed, err := ctrl.Sync(transform.Vector{9, 9, 9}, transform.Vector{8, 8, 8})
			Expect(err).NotTo(HaveOccurred())
			Expect(changed).To(BeFalse())
			Expect(ctrl.Running()).To(BeTrue())
			Expect(ctrl.Progress()).To(Equal(0.25))
		})
	})
})

var _ = Describe("Phase", func() {
	DescribeTable("String",
		func(p animate.Phase, want string) {
			Expect(p.String()).To(Equal(want))
		},
		Entry("idle", animate.Idle, "idle"),
		Entry("interpolating", animate.Interpolating, "interpolating"),
		Entry("stopped", animate.Stopped, "stopped"),
		Entry("unknown", animate.Phase(9), "phase(9)"),
	)
})
