package board

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/llmit/llmit-term/tui/common"
)

const (
	previewCols     = 16
	previewRows     = 8
	previewMaxBytes = 4 * 1024 * 1024
)

// MediaPreviewLoadedMsg carries a rendered thumbnail of a post image.
type MediaPreviewLoadedMsg struct {
	URL     string
	Preview string
	Err     error
}

func newPreviewClient() *http.Client {
	return &http.Client{Timeout: 6 * time.Second}
}

// ensurePreviewCmd fetches the focused post's image when previews are on
// and it is neither rendered nor in flight.
func (m *Model) ensurePreviewCmd() tea.Cmd {
	if !m.showPreview {
		return nil
	}
	p, ok := m.focusedPost()
	if !ok || !p.HasImage() || !common.IsSafeExternalURL(p.ImageURL) {
		return nil
	}
	if _, ok := m.previews[p.ImageURL]; ok {
		return nil
	}
	if m.previewLoading[p.ImageURL] {
		return nil
	}
	m.previewLoading[p.ImageURL] = true
	return fetchMediaPreview(m.previewClient, p.ImageURL, previewCols, previewRows)
}

func (m Model) handlePreviewMsg(msg MediaPreviewLoadedMsg) (Model, tea.Cmd) {
	// Dropped when the page changed while the image was downloading.
	if !m.previewLoading[msg.URL] {
		return m, nil
	}
	delete(m.previewLoading, msg.URL)
	if msg.Err != nil {
		m.previews[msg.URL] = ""
		return m, nil
	}
	m.previews[msg.URL] = msg.Preview
	return m, nil
}

func fetchMediaPreview(client *http.Client, url string, w, h int) tea.Cmd {
	return func() tea.Msg {
		preview, err := loadStaticMediaPreview(client, url, w, h)
		return MediaPreviewLoadedMsg{URL: url, Preview: preview, Err: err}
	}
}

func loadStaticMediaPreview(client *http.Client, url string, w, h int) (string, error) {
	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("preview status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, previewMaxBytes))
	if err != nil {
		return "", err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	return renderANSIThumbnail(img, w, h), nil
}

// renderANSIThumbnail draws img as w×h cells of two background-coloured
// spaces each.
func renderANSIThumbnail(img image.Image, w, h int) string {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return ""
	}
	if w < 4 {
		w = 4
	}
	if h < 2 {
		h = 2
	}
	small := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, draw.Src, nil)

	var out strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(small.At(x, y)).(color.NRGBA)
			fmt.Fprintf(&out, "\x1b[48;2;%d;%d;%dm  \x1b[0m", c.R, c.G, c.B)
		}
		if y < h-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
