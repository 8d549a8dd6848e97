package service_test

import (
	"errors"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/servicelifecycle/config"
	"code.cloudfoundry.org/servicelifecycle/service"
	"github.com/onsi/gomega/gbytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("HeartbeatService", func() {
	var (
		fakeClock *fakeclock.FakeClock
		logger    *lagertest.TestLogger
		beats     chan struct{}
		beatErr   error
		heart     *service.HeartbeatService
		cfg       config.Config
	)

	BeforeEach(func() {
		fakeClock = fakeclock.NewFakeClock(time.Now())
		logger = lagertest.NewTestLogger("test")
		beats = make(chan struct{}, 10)
		beatErr = nil

		heart = service.NewHeartbeatService("alpha", fakeClock, logger, func() error {
			beats <- struct{}{}
			return beatErr
		})

		cfg = config.New(map[string]string{"heartbeat.interval": "1s"})
	})

	Describe("Initialize", func() {
		It("reads the shared interval", func() {
			Ω(heart.Initialize(cfg)).Should(Succeed())
			Ω(heart.Interval()).Should(Equal(time.Second))
			Ω(heart.State()).Should(Equal(service.StateInitialized))
		})

		It("prefers an interval named after the service", func() {
			cfg = config.New(map[string]string{
				"heartbeat.interval":       "1s",
				"heartbeat.alpha.interval": "5s",
			})

			Ω(heart.Initialize(cfg)).Should(Succeed())
			Ω(heart.Interval()).Should(Equal(5 * time.Second))
		})

		It("ignores a broken shared interval when the named one is set", func() {
			cfg = config.New(map[string]string{
				"heartbeat.interval":       "whenever",
				"heartbeat.alpha.interval": "2s",
			})

			Ω(heart.Initialize(cfg)).Should(Succeed())
			Ω(heart.Interval()).Should(Equal(2 * time.Second))
		})

		It("is initialized once by a composite without double wrapping", func() {
			cfg = config.New(map[string]string{"heartbeat.interval": "0"})
			composite := service.NewCompositeService("hearts", logger, heart)

			Ω(composite.Initialize(cfg)).Should(MatchError("failed to initialize alpha: heartbeat interval must be positive"))
		})

		It("defaults the interval", func() {
			Ω(heart.Initialize(config.Empty())).Should(Succeed())
			Ω(heart.Interval()).Should(Equal(service.DefaultHeartbeatInterval))
		})

		It("rejects a non-positive interval", func() {
			cfg = config.New(map[string]string{"heartbeat.interval": "0"})

			err := heart.Initialize(cfg)

			var initErr *service.InitializationError
			Ω(errors.As(err, &initErr)).Should(BeTrue())
			Ω(initErr.Service).Should(Equal("alpha"))
			Ω(errors.Is(err, service.ErrNonPositiveInterval)).Should(BeTrue())
			Ω(heart.State()).Should(Equal(service.StateCreated))
		})

		It("rejects an unparsable interval", func() {
			cfg = config.New(map[string]string{"heartbeat.alpha.interval": "often"})
			Ω(heart.Initialize(cfg)).Should(MatchError(ContainSubstring("failed to initialize alpha")))
		})
	})

	Describe("Start", func() {
		It("refuses to start before being initialized", func() {
			var transitionErr *service.InvalidTransitionError
			Ω(errors.As(heart.Start(), &transitionErr)).Should(BeTrue())
		})

		Context("once initialized", func() {
			BeforeEach(func() {
				Ω(heart.Initialize(cfg)).Should(Succeed())
				Ω(heart.Start()).Should(Succeed())
			})

			AfterEach(func() {
				heart.Stop()
			})

			It("beats on every interval", func() {
				Consistently(beats).ShouldNot(Receive())

				fakeClock.WaitForWatcherAndIncrement(time.Second)
				Eventually(beats).Should(Receive())

				fakeClock.WaitForWatcherAndIncrement(time.Second)
				Eventually(beats).Should(Receive())
			})

			It("keeps beating after a failed beat", func() {
				beatErr = errors.New("flatline")

				fakeClock.WaitForWatcherAndIncrement(time.Second)
				Eventually(beats).Should(Receive())
				Eventually(logger).Should(gbytes.Say("test.heartbeat.failed-to-beat"))

				fakeClock.WaitForWatcherAndIncrement(time.Second)
				Eventually(beats).Should(Receive())
			})

			It("is started", func() {
				Ω(heart.State()).Should(Equal(service.StateStarted))
			})
		})
	})

	Describe("Stop", func() {
		It("stops beating", func() {
			Ω(heart.Initialize(cfg)).Should(Succeed())
			Ω(heart.Start()).Should(Succeed())
			fakeClock.WaitForWatcherAndIncrement(time.Second)
			Eventually(beats).Should(Receive())

			Ω(heart.Stop()).Should(Succeed())
			Ω(heart.State()).Should(Equal(service.StateStopped))

			fakeClock.Increment(time.Second)
			Consistently(beats).ShouldNot(Receive())
		})

		It("is safe without a start", func() {
			Ω(heart.Stop()).Should(Succeed())
			Ω(heart.Stop()).Should(Succeed())
			Ω(heart.State()).Should(Equal(service.StateStopped))
		})
	})

	It("can be driven by a composite", func() {
		composite := service.NewCompositeService("hearts", logger, heart)

		Ω(composite.Initialize(cfg)).Should(Succeed())
		Ω(composite.Start()).Should(Succeed())

		fakeClock.WaitForWatcherAndIncrement(time.Second)
		Eventually(beats).Should(Receive())

		Ω(composite.Stop()).Should(Succeed())
		Ω(heart.State()).Should(Equal(service.StateStopped))
	})
})
