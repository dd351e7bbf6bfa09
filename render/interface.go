package render

// Renderer draws one layer of the frame into the buffer
// A returned error or panic is reported and skips only this renderer for the frame
type Renderer interface {
	Render(buf *FrameBuffer) error
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(buf *FrameBuffer) error

// Render calls f(buf)
func (f RendererFunc) Render(buf *FrameBuffer) error {
	return f(buf)
}
