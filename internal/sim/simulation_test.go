package sim_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/blackhole/internal/camera"
	"github.com/san-kum/blackhole/internal/physics"
	"github.com/san-kum/blackhole/internal/sim"
)

type countingMetric struct{ n int }

func (c *countingMetric) Name() string             { return "frames" }
func (c *countingMetric) Observe(f sim.FrameStats) { c.n++ }
func (c *countingMetric) Value() float64           { return float64(c.n) }
func (c *countingMetric) Reset()                   { c.n = 0 }

var _ = Describe("Simulation", func() {
	var s *sim.Simulation

	BeforeEach(func() {
		s = sim.New(sim.DefaultSetup())
	})

	It("seeds the disk, stars and grid", func() {
		Expect(s.Particles).To(HaveLen(500))
		Expect(s.Stars).To(HaveLen(200))
		Expect(s.Grid.VertexCount()).To(Equal(31 * 31))
		Expect(s.Camera).NotTo(BeNil())
	})

	It("keeps every particle outside the respawn threshold", func() {
		for i := 0; i < 300; i++ {
			s.Step(1.0/60, camera.Input{})
		}
		for _, p := range s.Particles {
			Expect(p.OrbitalRadius).To(BeNumerically(">=", s.BlackHole.SchwarzschildRadius*physics.RespawnThreshold))
			Expect(p.Temperature).To(BeNumerically(">", 0))
		}
	})

	It("advances time and frame counters", func() {
		f := s.Step(0.5, camera.Input{})
		Expect(f.Frame).To(Equal(1))
		Expect(f.Time).To(BeNumerically("~", 0.5, 1e-12))
		Expect(s.Elapsed).To(BeNumerically("~", 0.5, 1e-12))
	})

	It("produces positive luminosity once shaded", func() {
		f := s.Step(1.0/60, camera.Input{})
		Expect(f.Luminosity).To(BeNumerically(">", 0))
		Expect(f.MaxTemperature).To(BeNumerically(">=", f.MeanTemperature))
		Expect(f.MinRadius).To(BeNumerically("<=", f.MeanRadius))
	})

	It("is reproducible for a fixed seed", func() {
		other := sim.New(sim.DefaultSetup())
		for i := 0; i < 50; i++ {
			a := s.Step(1.0/60, camera.Input{})
			b := other.Step(1.0/60, camera.Input{})
			Expect(a).To(Equal(b))
		}
	})

	It("restores the initial disk on Reset", func() {
		first := s.Particles[0]
		for i := 0; i < 20; i++ {
			s.Step(1.0/60, camera.Input{})
		}
		s.Reset()
		Expect(s.Particles[0]).To(Equal(first))
		Expect(s.Elapsed).To(BeZero())
		Expect(s.Frame).To(BeZero())
	})

	Context("without a camera", func() {
		BeforeEach(func() {
			setup := sim.DefaultSetup()
			setup.Camera = nil
			s = sim.New(setup)
		})

		It("skips shading", func() {
			f := s.Step(1.0/60, camera.Input{})
			Expect(f.Luminosity).To(BeZero())
			Expect(f.Azimuth).To(BeZero())
			Expect(f.MeanTemperature).To(BeNumerically(">", 0))
		})
	})

	Describe("Run", func() {
		It("collects one frame per step and reports metrics", func() {
			m := &countingMetric{}
			s.AddMetric(m)

			res, err := s.Run(context.Background(), sim.RunConfig{Dt: 0.1, Duration: 2, ValidateState: true})
			Expect(err).NotTo(HaveOccurred())
			Expect(res.StepsTaken).To(Equal(20))
			Expect(res.Frames).To(HaveLen(20))
			Expect(res.Metrics).To(HaveKeyWithValue("frames", 20.0))
			Expect(res.Series("mean_radius")).To(HaveLen(20))
			Expect(res.Series("nope")).To(BeNil())
		})

		It("rejects a non-positive dt", func() {
			_, err := s.Run(context.Background(), sim.RunConfig{Dt: 0, Duration: 1})
			Expect(errors.Is(err, sim.ErrInvalidConfig)).To(BeTrue())
		})

		It("stops on a cancelled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := s.Run(ctx, sim.RunConfig{Dt: 0.1, Duration: 1})
			Expect(err).To(MatchError(context.Canceled))
		})

		It("takes the same number of frames with or without a callback", func() {
			cfg := sim.RunConfig{Dt: 0.1, Duration: 1}
			calls := 0
			Expect(s.RunWithCallback(context.Background(), cfg, func(sim.FrameStats) bool {
				calls++
				return true
			})).To(Succeed())
			Expect(calls).To(Equal(10))

			res, err := sim.New(sim.DefaultSetup()).Run(context.Background(), cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.StepsTaken).To(Equal(calls))
		})

		It("stops early when the callback declines", func() {
			calls := 0
			err := s.RunWithCallback(context.Background(), sim.RunConfig{Dt: 0.1, Duration: 10}, func(sim.FrameStats) bool {
				calls++
				return calls < 3
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(calls).To(Equal(3))
		})
	})

	Describe("History", func() {
		It("records each frame up to its capacity", func() {
			h := sim.NewHistory(5)
			s.AddObserver(h)

			var last sim.FrameStats
			for i := 0; i < 8; i++ {
				last = s.Step(0.1, camera.Input{})
			}
			Expect(h.Luminosity).To(HaveLen(5))
			Expect(h.Respawns).To(HaveLen(5))
			Expect(h.Luminosity[4]).To(Equal(last.Luminosity))
		})

		It("is cleared by Reset", func() {
			h := sim.NewHistory(5)
			s.AddObserver(h)
			s.Step(0.1, camera.Input{})

			s.Reset()
			Expect(h.Luminosity).To(BeEmpty())
			Expect(h.Respawns).To(BeEmpty())
		})
	})
})
