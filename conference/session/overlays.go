package session

import (
	"fmt"
	"strings"
)

// fullScreen is the pseudo region covering the whole conference canvas.
const fullScreen = 0

const (
	overlayCaption  = "caller_overlay"
	overlayLabel    = "video_overlay"
	overlayRecDot   = "micon_overlay"
	overlayMicMute  = "micmute_overlay"
	overlayBaghead  = "baghead_overlay"
	overlayTicker   = "stocktick"
	overlayTickText = "stocktickText"
	overlaySlide    = "slideshow_overlay"
)

const (
	videoLabelText = "Recorded Video"
	slideCount     = 3
	tickerText     = "AMD 4.15 +0.02   BA 142.80 -0.31   CAB 69.66 +1.20   DOW 43.47 +0.10   IBM 156.85 -0.44"
)

// overlayBuilder renders region_overlays specs understood by the media server.
type overlayBuilder struct {
	imageBase string
}

func newOverlayBuilder(mediaDir string) overlayBuilder {
	return overlayBuilder{imageBase: "file://" + strings.TrimSuffix(mediaDir, "/") + "/"}
}

func deleteOverlay(region int, id string) string {
	return fmt.Sprintf("region=%d,overlay_id=%s,priority=0", region, id)
}

func textOverlay(region int, id, priority, pID, text string) string {
	return fmt.Sprintf("region=%d,overlay_id=%s,left=30%%,top=90%%,hsize=40%%,vsize=10%%,priority=%s,"+
		"overlay_duration=lifeOfContent,overlay_bgopacity=0%%,textstyle_id=textStyle2,fontfamily=TimesNewRoman,"+
		"fontweight=bold,fontcolor=firebrick,textstyle_bgcolor=gray,textalignment=center,content_id=r2-1,"+
		"p_id=%s,p_style=textStyle2,text=%s", region, id, priority, pID, text)
}

func (b overlayBuilder) imageOverlay(region int, id, geometry, priority, image string) string {
	return fmt.Sprintf("region=%d,overlay_id=%s,%s,priority=%s,overlay_bgopacity=0%%,imgstyle_id=imgStyle1,"+
		"imgalignment=center,imgstyle_bgopacity=0%%,content_id=body1,content_applymode=replace,img_id=image1,"+
		"img_style=imgStyle1,img_type=png,img_uri=%s%s", region, id, geometry, priority, b.imageBase, image)
}

func (b overlayBuilder) showCaption(region int, name string) string {
	return textOverlay(region, overlayCaption, "0.6", "conferee_name", name)
}

func (b overlayBuilder) showVideoLabel(region int) string {
	return textOverlay(region, overlayLabel, "0.1", "ivideo_caption", videoLabelText)
}

func (b overlayBuilder) showRecordingDot(region int) string {
	return b.imageOverlay(region, overlayRecDot, "left=0%,top=0%,hsize=10%,vsize=10%", "0.3", "red_recording_dot.png")
}

func (b overlayBuilder) showMicMute(region int) string {
	return b.imageOverlay(region, overlayMicMute, "left=0%,top=0%,hsize=15%,vsize=15%", "0.2", "mic_disabled.png")
}

func (b overlayBuilder) showBaghead(region int) string {
	return b.imageOverlay(region, overlayBaghead, "left=0%,top=0%,hsize=100%,vsize=100%", "0.5", "baghead.png")
}

func (b overlayBuilder) showTicker(region int) string {
	image := fmt.Sprintf("region=%d,overlay_id=%s,left=20%%,top=50%%,hsize=60%%,vsize=50%%,priority=0.5,"+
		"overlay_bgcolor=CornflowerBlue,imgstyle_id=imgStyle1,imgalignment=center,imgstyle_bgopacity=0%%,"+
		"content_id=body1,content_applymode=replace,img_id=image1,img_style=imgStyle1,img_type=png,"+
		"img_uri=%sstock_market.png,img_duration=0", region, overlayTicker, b.imageBase)
	text := fmt.Sprintf("region=%d,overlay_id=%s,left=20%%,top=95%%,hsize=60%%,vsize=5%%,priority=0.4,"+
		"overlay_bgcolor=gray,textstyle_id=textStyle2,fontfamily=Arial,fontweight=bold,fontcolor=firebrick,"+
		"textstyle_bgcolor=gray,textalignment=center,wrap=nowrap,content_id=body1,content_applymode=replace,"+
		"scroll_mode=scrollContinuous,direction=rl,padding=0,speed=8,p_id=textstring1,p_style=textStyle2,"+
		"p_duration=30s,encoding=UTF8,text=%s", region, overlayTickText, tickerText)
	return image + ";" + text
}

func (b overlayBuilder) deleteTicker(region int) string {
	return deleteOverlay(region, overlayTicker) + ";" + deleteOverlay(region, overlayTickText)
}

func (b overlayBuilder) showSlide(region, slide int) string {
	return fmt.Sprintf("region=%d,overlay_id=%s,left=0%%,top=0%%,hsize=66.6%%,vsize=66.6%%,priority=0.4,"+
		"hbwidth=2%%,vbwidth=2%%,bcolor=firebrick,overlay_duration=lifeOfContent,imgstyle_id=imgStyle1,"+
		"imgalignment=center,imgstyle_applymode=resizeToFit,imgsize=98%%,img_duration=5s,content_id=%s,"+
		"content_applymode=replace,img_id=image1,img_style=imgStyle1,img_type=png,img_uri=%s%s.png",
		region, overlaySlide, slideContentID(slide), b.imageBase, slideContentID(slide))
}

func slideContentID(slide int) string {
	return fmt.Sprintf("slide%d", slide)
}
