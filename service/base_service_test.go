package service_test

import (
	"errors"

	"code.cloudfoundry.org/servicelifecycle/config"
	"code.cloudfoundry.org/servicelifecycle/service"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BaseService", func() {
	var base *service.BaseService

	BeforeEach(func() {
		base = service.NewBaseService("base")
	})

	It("starts out created", func() {
		Ω(base.Name()).Should(Equal("base"))
		Ω(base.State()).Should(Equal(service.StateCreated))
	})

	It("moves forward through the lifecycle", func() {
		cfg := config.New(map[string]string{"k": "v"})

		Ω(base.Initialize(cfg)).Should(Succeed())
		Ω(base.State()).Should(Equal(service.StateInitialized))
		Ω(base.Config()).Should(Equal(cfg))

		Ω(base.Start()).Should(Succeed())
		Ω(base.State()).Should(Equal(service.StateStarted))

		Ω(base.Stop()).Should(Succeed())
		Ω(base.State()).Should(Equal(service.StateStopped))
	})

	It("refuses to start before being initialized", func() {
		err := base.Start()

		var transitionErr *service.InvalidTransitionError
		Ω(errors.As(err, &transitionErr)).Should(BeTrue())
		Ω(transitionErr.From).Should(Equal(service.StateCreated))
		Ω(transitionErr.To).Should(Equal(service.StateStarted))
		Ω(base.State()).Should(Equal(service.StateCreated))
	})

	It("refuses to initialize twice", func() {
		Ω(base.Initialize(config.Empty())).Should(Succeed())
		Ω(base.Initialize(config.Empty())).Should(MatchError("base cannot move from initialized to initialized"))
	})

	It("can be stopped from any state", func() {
		Ω(base.Stop()).Should(Succeed())
		Ω(base.State()).Should(Equal(service.StateStopped))
	})

	It("cannot leave stopped", func() {
		Ω(base.Stop()).Should(Succeed())
		Ω(base.Initialize(config.Empty())).ShouldNot(Succeed())
		Ω(base.Start()).ShouldNot(Succeed())
	})
})

var _ = Describe("State", func() {
	It("has a readable name", func() {
		Ω(service.StateCreated.String()).Should(Equal("created"))
		Ω(service.StateInitialized.String()).Should(Equal("initialized"))
		Ω(service.StateStarted.String()).Should(Equal("started"))
		Ω(service.StateStopped.String()).Should(Equal("stopped"))
		Ω(service.State(42).String()).Should(Equal("unknown"))
	})
})
