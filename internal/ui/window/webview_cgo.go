//go:build webkit_cgo

package window

/*
#cgo pkg-config: webkitgtk-6.0 gtk4 javascriptcoregtk-6.0
#include <stdlib.h>
#include <webkit/webkit.h>
#include <jsc/jsc.h>

extern void goOnScriptMessage(unsigned long id, char* json);
extern void goOnDownloadDestination(unsigned long id, char* uri, char* suggested);

static void chanomhub_on_script_message(WebKitUserContentManager* ucm, JSCValue* val, gpointer data) {
    (void)ucm;
    if (!val) return;
    char* json = jsc_value_to_json(val, 0);
    if (!json) return;
    goOnScriptMessage((unsigned long)data, json);
    g_free(json);
}

static gboolean chanomhub_register_handler(WebKitUserContentManager* ucm, const char* name, unsigned long id) {
    if (!ucm || !name) return FALSE;
    if (!webkit_user_content_manager_register_script_message_handler(ucm, name, NULL)) return FALSE;
    gchar* signal = g_strdup_printf("script-message-received::%s", name);
    g_signal_connect_data(G_OBJECT(ucm), signal, G_CALLBACK(chanomhub_on_script_message), (gpointer)id, NULL, 0);
    g_free(signal);
    return TRUE;
}

// The WebKit transfer is cancelled; the URL goes to the Go engine, which
// can pause and resume.
static gboolean chanomhub_on_decide_destination(WebKitDownload* d, const gchar* suggested, gpointer data) {
    WebKitURIRequest* req = webkit_download_get_request(d);
    const gchar* uri = req ? webkit_uri_request_get_uri(req) : NULL;
    if (uri) {
        goOnDownloadDestination((unsigned long)data, (char*)uri, (char*)(suggested ? suggested : ""));
    }
    webkit_download_cancel(d);
    return TRUE;
}

static void chanomhub_on_download_started(WebKitNetworkSession* session, WebKitDownload* d, gpointer data) {
    (void)session;
    g_signal_connect(d, "decide-destination", G_CALLBACK(chanomhub_on_decide_destination), data);
}

static void chanomhub_watch_downloads(WebKitWebView* view, unsigned long id) {
    WebKitNetworkSession* session = webkit_web_view_get_network_session(view);
    if (session) {
        g_signal_connect(session, "download-started", G_CALLBACK(chanomhub_on_download_started), (gpointer)id);
    }
}

static void chanomhub_eval(WebKitWebView* view, const char* js) {
    webkit_web_view_evaluate_javascript(view, js, -1, NULL, NULL, NULL, NULL, NULL);
}

static void chanomhub_load_html(WebKitWebView* view, const char* html, const char* base) {
    webkit_web_view_load_html(view, html, base);
}
*/
import "C"

import (
	"runtime"
	"unsafe"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
)

// webView adapts a gotk4 WebKit view to View.
type webView struct {
	id   uint64
	view *webkit.WebView
}

func (w *webView) native() *C.WebKitWebView {
	return (*C.WebKitWebView)(unsafe.Pointer(coreglib.BaseObject(w.view).Native()))
}

func (w *webView) EvaluateScript(script string) {
	cjs := C.CString(script)
	defer C.free(unsafe.Pointer(cjs))
	C.chanomhub_eval(w.native(), cjs)
	runtime.KeepAlive(w.view)
}

func (w *webView) LoadURL(url string) {
	w.view.LoadURI(url)
}

func (w *webView) LoadHTML(html, baseURI string) {
	chtml := C.CString(html)
	defer C.free(unsafe.Pointer(chtml))
	cbase := C.CString(baseURI)
	defer C.free(unsafe.Pointer(cbase))
	C.chanomhub_load_html(w.native(), chtml, cbase)
	runtime.KeepAlive(w.view)
}

func (w *webView) CurrentURI() string {
	return w.view.URI()
}

// attach registers the script message handler and the download hook.
func (w *webView) attach() bool {
	ucm := w.view.UserContentManager()
	if ucm == nil {
		return false
	}
	cname := C.CString(MessageHandlerName)
	defer C.free(unsafe.Pointer(cname))

	cucm := (*C.WebKitUserContentManager)(unsafe.Pointer(coreglib.BaseObject(ucm).Native()))
	ok := C.chanomhub_register_handler(cucm, cname, C.ulong(w.id)) != C.gboolean(0)
	C.chanomhub_watch_downloads(w.native(), C.ulong(w.id))
	runtime.KeepAlive(ucm)
	runtime.KeepAlive(w.view)
	return ok
}
