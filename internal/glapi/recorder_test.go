package glapi

import "testing"

func TestRecorderDeclareAssignsLocationsInOrder(t *testing.T) {
	rec := NewRecorder()
	rec.Declare(5, "first", "second", "first")

	if loc := rec.Location(5, "first"); loc != 0 {
		t.Errorf("Expected 0, got %d", loc)
	}
	if loc := rec.Location(5, "second"); loc != 1 {
		t.Errorf("Expected 1, got %d", loc)
	}
	if loc := rec.Location(6, "first"); loc != -1 {
		t.Errorf("Other programs should not see declarations, got %d", loc)
	}
}

func TestRecorderTracksObjects(t *testing.T) {
	rec := NewRecorder()
	tex := rec.GenTexture()
	fbo := rec.GenFramebuffer()
	rec.BindFramebuffer(DrawFramebuffer, fbo)

	if rec.LiveTextures() != 1 || rec.LiveFramebuffers() != 1 {
		t.Fatalf("Expected one live texture and framebuffer")
	}

	rec.DeleteFramebuffer(fbo)
	rec.DeleteTexture(tex)

	if rec.LiveTextures() != 0 || rec.LiveFramebuffers() != 0 {
		t.Error("Deleted objects should not be live")
	}
	if rec.FramebufferBinding(DrawFramebuffer) != 0 {
		t.Error("Deleting a bound framebuffer should reset the binding to 0")
	}
}

func TestRecorderUniformCalls(t *testing.T) {
	rec := NewRecorder()
	rec.GenTexture()
	rec.Uniform1i(2, 0)
	rec.Uniform2f(3, 1, 2)

	calls := rec.UniformCalls()
	if len(calls) != 2 {
		t.Fatalf("Expected 2 uniform calls, got %d", len(calls))
	}
	if calls[1].Op != "Uniform2f" || calls[1].Floats[1] != 2 {
		t.Errorf("Unexpected call %v", calls[1])
	}
}

func TestTargetString(t *testing.T) {
	if ReadFramebuffer.String() != "read" || DrawFramebuffer.String() != "draw" {
		t.Error("Unexpected target names")
	}
}
