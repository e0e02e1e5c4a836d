package preview

import (
	"github.com/codr1/careerbuilder/internal/preview"
	"github.com/codr1/careerbuilder/internal/templates/components/public"
)

type FrameData struct {
	Device    preview.Device
	ShareURL  string
	SelectURL string
	// Embed hides the toolbar when the preview sits inside the builder.
	Embed bool
	// Page is nil when there is no snapshot to show.
	Page *public.PageData
}

func (d FrameData) Metrics() preview.Metrics {
	return preview.MetricsFor(d.Device)
}

const (
	PageURL   = "/preview"
	SelectURL = "/preview/device"
	WSURL     = "/preview/ws"
)

// ReloadScript refreshes a standalone preview whenever a snapshot is saved.
const ReloadScript = `(function(){
var proto=location.protocol==="https:"?"wss:":"ws:";
function connect(){
var ws=new WebSocket(proto+"//"+location.host+"` + WSURL + `");
ws.onmessage=function(){location.reload();};
ws.onclose=function(){setTimeout(connect,2000);};
}
connect();
})();`
