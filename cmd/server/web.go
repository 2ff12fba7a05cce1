package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image/png"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/mandelgray/mandel"
	"github.com/mandelgray/mandel/render"
	"github.com/mandelgray/mandel/sink"
)

// Binary frame layout shared with the viewer page. The first frame
// announces the image dimensions and carries no payload; every later
// frame is one finished band: its top row, its height and a PNG of its
// pixels.
//
//	dims frame: width(uint32 BE) + height(uint32 BE)
//	band frame: top(uint32 BE) + height(uint32 BE) + PNG bytes

func dimsFrame(bounds mandel.Bounds) []byte {
	frame := make([]byte, 8)
	binary.BigEndian.PutUint32(frame[0:], uint32(bounds.Width))
	binary.BigEndian.PutUint32(frame[4:], uint32(bounds.Height))
	return frame
}

func bandFrame(band render.Band, pixels []byte) ([]byte, error) {
	img, err := sink.GrayImage(pixels, band.Bounds)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	header := make([]byte, 8)
	binary.BigEndian.PutUint32(header[0:], uint32(band.Top))
	binary.BigEndian.PutUint32(header[4:], uint32(band.Bounds.Height))
	buf.Write(header)

	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// websocketHandler upgrades the connection and streams band frames to
// the client: all bands finished so far, then live ones. The
// connection is closed normally once the render is complete.
func websocketHandler(s *bandScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}
		defer c.CloseNow()

		ctx := r.Context()
		if err := c.Write(ctx, websocket.MessageBinary, dimsFrame(s.bounds)); err != nil {
			log.Printf("write dims: %v", err)
			return
		}

		bands, unsubscribe := s.subscribe()
		defer unsubscribe()

		for band := range bands {
			frame, err := bandFrame(band, s.bandPixels(band))
			if err != nil {
				log.Printf("encode band at row %d: %v", band.Top, err)
				return
			}
			if err := c.Write(ctx, websocket.MessageBinary, frame); err != nil {
				log.Printf("write band at row %d: %v", band.Top, err)
				return
			}
		}

		c.Close(websocket.StatusNormalClosure, "render complete")
	}
}

// pageHandler serves the self-contained viewer page. The page opens a
// websocket back to this server and paints each band frame onto a
// canvas at its row offset.
func pageHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, viewerPage)
}

const viewerPage = `<!DOCTYPE html>
<html>
<head><title>mandel</title></head>
<body style="background:#1e1e2e;margin:0">
<canvas id="view" style="display:block;margin:0 auto"></canvas>
<script>
const canvas = document.getElementById("view");
const ctx = canvas.getContext("2d");
const proto = location.protocol === "https:" ? "wss" : "ws";
const ws = new WebSocket(proto + "://" + location.host + "/ws");
ws.binaryType = "arraybuffer";
ws.onmessage = async (ev) => {
	const view = new DataView(ev.data);
	if (ev.data.byteLength === 8) {
		canvas.width = view.getUint32(0);
		canvas.height = view.getUint32(4);
		ctx.fillStyle = "#3a3a6e";
		ctx.fillRect(0, 0, canvas.width, canvas.height);
		return;
	}
	const top = view.getUint32(0);
	const blob = new Blob([ev.data.slice(8)], {type: "image/png"});
	const band = await createImageBitmap(blob);
	ctx.drawImage(band, 0, top);
};
</script>
</body>
</html>
`
