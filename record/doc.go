// Package record captures ruler frames as gg recordings.
//
// A Surface implements ruler.Surface on top of a recording.Recorder, so a
// frame can be stored as drawing commands and played back later to any
// registered recording backend. The raster backend is always available;
// vector backends register themselves when imported.
//
// # Basic Usage
//
//	r := ruler.New(ruler.WithDisplay(ruler.UniformDisplay(160)))
//
//	rec, err := record.Render(r, 1080, 320)
//	if err != nil {
//	    return err
//	}
//
//	f, _ := os.Create("ruler.png")
//	defer f.Close()
//	_, err = record.Export(rec, "raster", f)
package record
