package maze

import "io"

// LineSink receives the rendered maze one line at a time.
type LineSink interface {
	WriteLine(line string) error
}

// WriterSink writes every line followed by a newline to an io.Writer.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink returns a LineSink backed by w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// WriteLine writes line and a trailing newline.
func (s *WriterSink) WriteLine(line string) error {
	_, err := io.WriteString(s.w, line+"\n")
	return err
}

// Lines collects rendered lines in memory.
type Lines []string

// WriteLine appends line.
func (l *Lines) WriteLine(line string) error {
	*l = append(*l, line)
	return nil
}
