package ui

import (
	"fmt"
	"io"
	"iter"
	"log"

	"ShapeCanvas/internal/export"
	"ShapeCanvas/internal/shape"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

type encodeFunc func(w io.Writer, size export.Size, shapes iter.Seq[shape.Record]) error

type exporter struct {
	window fyne.Window
	board  *Board
}

func (e *exporter) savePDF() {
	e.save("canvas.pdf", ".pdf", "PDF", export.PDF)
}

func (e *exporter) savePNG() {
	e.save("canvas.png", ".png", "PNG", export.PNG)
}

func (e *exporter) save(fileName, ext, format string, encode encodeFunc) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[EXPORT] Save dialog failed: %v", err)
			e.board.SetStatus("Export failed")
			return
		}
		if writer == nil {
			return // cancelled
		}
		e.board.SetStatus(e.write(writer, format, encode))
	}, e.window)
	d.SetFileName(fileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

// write encodes the current canvas into w, closes it and returns the text
// for the status bar.
func (e *exporter) write(w io.WriteCloser, format string, encode encodeFunc) string {
	defer func() {
		if err := w.Close(); err != nil {
			log.Printf("[EXPORT] Error closing writer: %v", err)
		}
	}()

	size := e.board.Canvas.Size()
	if size.Width <= 0 || size.Height <= 0 {
		size = fyne.NewSize(DefaultWidth, DefaultHeight)
	}
	exportSize := export.Size{Width: int(size.Width), Height: int(size.Height)}

	store := e.board.Controller.Store()
	if err := encode(w, exportSize, store.All()); err != nil {
		log.Printf("[EXPORT] %s export failed: %v", format, err)
		return fmt.Sprintf("Error exporting %s", format)
	}

	log.Printf("[EXPORT] Wrote %d shapes as %s (%dx%d)", store.Len(), format, exportSize.Width, exportSize.Height)
	return fmt.Sprintf("Exported %d shapes as %s", store.Len(), format)
}
