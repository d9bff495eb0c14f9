package surface

import "testing"

func TestHeadlessValidatesHandles(t *testing.T) {
	h := NewHeadless()
	d := h.OpenDisplay()

	if _, ok := h.ChooseConfig(d, DefaultConfigRequests[0]); ok {
		t.Error("ChooseConfig succeeded on an uninitialized display")
	}
	if code := h.Initialize(d); code != Success {
		t.Fatalf("Initialize = %v", code)
	}
	cfg, ok := h.ChooseConfig(d, DefaultConfigRequests[0])
	if !ok {
		t.Fatal("ChooseConfig failed")
	}
	s, code := h.CreateWindowSurface(d, cfg, win1)
	if code != Success {
		t.Fatalf("CreateWindowSurface = %v", code)
	}
	ctx, code := h.CreateContext(d, cfg, 3)
	if code != Success {
		t.Fatalf("CreateContext = %v", code)
	}

	if code := h.SwapBuffers(d, s); code != BadCurrentSurface {
		t.Errorf("SwapBuffers before MakeCurrent = %v, want %v", code, BadCurrentSurface)
	}
	if code := h.MakeCurrent(d, s, RenderContext(999)); code != BadContext {
		t.Errorf("MakeCurrent with unknown context = %v, want %v", code, BadContext)
	}
	if code := h.MakeCurrent(d, s, ctx); code != Success {
		t.Fatalf("MakeCurrent = %v", code)
	}
	if code := h.SwapBuffers(d, s); code != Success {
		t.Errorf("SwapBuffers = %v", code)
	}

	h.DestroySurface(d, s)
	if code := h.SwapBuffers(d, s); code != BadSurface {
		t.Errorf("SwapBuffers on destroyed surface = %v, want %v", code, BadSurface)
	}
	if cur, _ := h.Current(); cur != NoSurface {
		t.Errorf("destroyed surface is still current: %d", cur)
	}
}

func TestHeadlessFaultQueues(t *testing.T) {
	c, h := newInitialized(t)
	h.FailSwap(BadAlloc, Success, BadMatch)

	want := []Code{BadAlloc, Success, BadMatch, Success}
	for i, w := range want {
		if got := c.Swap(); got != w {
			t.Errorf("Swap #%d = %v, want %v", i, got, w)
		}
	}
}

func TestHeadlessReleaseNeverFails(t *testing.T) {
	h := NewHeadless()
	h.FailMakeCurrent(ContextLost)
	if code := h.MakeCurrent(NoDisplay, NoSurface, NoContext); code != Success {
		t.Errorf("release = %v, want success", code)
	}
	if len(h.makeCurrentFaults) != 1 {
		t.Error("release consumed a queued fault")
	}
}

func TestHeadlessTerminateDropsConfigs(t *testing.T) {
	c, h := newInitialized(t)
	for i := 0; i < 3; i++ {
		c.Invalidate()
		if err := c.Init(win1); err != nil {
			t.Fatalf("Init #%d: %v", i, err)
		}
	}
	if got := h.LiveConfigs(); got != 1 {
		t.Errorf("LiveConfigs() = %d after reinit cycles, want 1", got)
	}

	c.Invalidate()
	if got := h.LiveConfigs(); got != 0 {
		t.Errorf("LiveConfigs() = %d after Invalidate, want 0", got)
	}
}
