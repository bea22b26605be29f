package hooking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type countingHook struct {
	calls []HookCtx
}

func (h *countingHook) Func(ctx HookCtx) {
	h.calls = append(h.calls, ctx)
}

var _ = Describe("HookableBase", func() {
	var (
		base *HookableBase
		pos  *HookPos
	)

	BeforeEach(func() {
		base = NewHookableBase()
		pos = &HookPos{Name: "Test"}
	})

	It("should start without hooks", func() {
		Expect(base.NumHooks()).To(Equal(0))
		Expect(base.Hooks()).To(BeEmpty())
	})

	It("should invoke hooks in registration order", func() {
		order := []string{}
		base.AcceptHook(HookFunc(func(HookCtx) { order = append(order, "a") }))
		base.AcceptHook(HookFunc(func(HookCtx) { order = append(order, "b") }))

		base.InvokeHook(HookCtx{Domain: base, Pos: pos})

		Expect(order).To(Equal([]string{"a", "b"}))
		Expect(base.NumHooks()).To(Equal(2))
	})

	It("should pass the context through", func() {
		hook := &countingHook{}
		base.AcceptHook(hook)

		base.InvokeHook(HookCtx{Domain: base, Pos: pos, Item: 42})

		Expect(hook.calls).To(HaveLen(1))
		Expect(hook.calls[0].Pos).To(BeIdenticalTo(pos))
		Expect(hook.calls[0].Item).To(Equal(42))
	})

	It("should panic when a hook is registered twice", func() {
		hook := &countingHook{}
		base.AcceptHook(hook)

		Expect(func() { base.AcceptHook(hook) }).To(PanicWith("duplicated hook"))
	})
})
