package desc

// Image is one sprite. Data holds run-length encoded pixel words.
type Image struct {
	X        int16    `json:"x"`
	Y        int16    `json:"y"`
	W        int16    `json:"w"`
	H        int16    `json:"h"`
	Zoomable bool     `json:"zoomable"`
	Data     []uint16 `json:"-"`
}

// Empty reports whether the image has nothing to draw.
func (i *Image) Empty() bool { return i == nil || i.W <= 0 || i.H <= 0 }

// ImageList is a one-dimensional list of images; the arrays nest lists.
type ImageList struct {
	Count uint16 `json:"count"`
}
