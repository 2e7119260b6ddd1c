package proofdoc

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/wlproof/proofdoc/internal/fileutil"
)

// Page geometry. A4 at 72 DPI is 595x842 points; the viewport matches
// for pixel-for-point parity with the captured page.
const (
	viewportWidthPx  = 595
	viewportHeightPx = 842

	// Nominal A4 paper in inches. A fallback only: preferCSSPageSize
	// lets the document's @page rule govern final geometry.
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
)

// networkIdleWindow is how long the page must stay free of in-flight
// requests before the load counts as quiescent.
const networkIdleWindow = 300 * time.Millisecond

// imageLoadBarrierJS resolves once every <img> in the DOM has fired its
// load or error event. Network idle alone does not guarantee in-process
// image decode and layout have finished, which would leave blank image
// slots in the captured PDF. Images already complete at evaluation time
// count immediately.
const imageLoadBarrierJS = `() => {
	const images = Array.from(document.querySelectorAll('img'));
	return Promise.all(
		images.map((img) =>
			img.complete
				? Promise.resolve()
				: new Promise((resolve) => {
						img.onload = resolve;
						img.onerror = resolve;
					})
		)
	);
}`

// rodPrinter renders composed HTML to PDF with headless Chrome via
// go-rod. Every Print launches an isolated browser instance and tears
// it down before returning; concurrent prints share no state.
type rodPrinter struct {
	timeout time.Duration
}

// newRodPrinter creates a rodPrinter with the given content-load
// timeout.
func newRodPrinter(timeout time.Duration) *rodPrinter {
	return &rodPrinter{timeout: timeout}
}

// Print loads htmlContent in a fresh browser, waits for network
// quiescence and the image-load barrier, and captures one PDF.
// Returns explicit errors instead of panicking when browser operations
// fail.
func (p *rodPrinter) Print(ctx context.Context, htmlContent string) ([]byte, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	browser, teardown, err := launchBrowser()
	if err != nil {
		return nil, err
	}
	// Teardown runs on success and failure paths alike; leaking Chrome
	// processes under repeated failures is not acceptable.
	defer teardown()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Viewport sized to the target output before any content loads.
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidthPx,
		Height:            viewportHeightPx,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	// Bound the load phase by the configured timeout or an earlier
	// context deadline.
	timeout := p.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	loading := page.Timeout(timeout)

	waitIdle := loading.WaitRequestIdle(networkIdleWindow, nil, nil, nil)
	if err := loading.Navigate("file://" + tmpPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := loading.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	waitIdle()

	// Explicit barrier past network idle: every image must have
	// settled before capture.
	if _, err := loading.Eval(imageLoadBarrierJS); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Capture is atomic once started; the context is not consulted
	// again until the stream is drained.
	reader, err := page.PDF(buildPDFOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// launchBrowser starts an isolated headless Chrome with no persistent
// profile and returns a teardown that is safe to call on every path.
func launchBrowser() (*rod.Browser, func(), error) {
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	teardown := func() {
		_ = browser.Close()
		l.Kill()
	}
	return browser, teardown, nil
}

// buildPDFOptions returns the capture settings: nominal A4 paper, zero
// margins on all sides, background colors and images on, and
// preferCSSPageSize so the document's own @page rule wins over the
// nominal format.
func buildPDFOptions() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(paperWidthInches),
		PaperHeight:       floatPtr(paperHeightInches),
		MarginTop:         floatPtr(0),
		MarginBottom:      floatPtr(0),
		MarginLeft:        floatPtr(0),
		MarginRight:       floatPtr(0),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
