package composer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"

	// Register the raster formats the capture flow produces.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Decode turns a memory's photo payload into a raster. The payload may be
// raw encoded-image bytes, a base64 string of those bytes, or a full data
// URL as produced by a browser capture flow; all three are accepted.
//
// Decoding runs in a separate goroutine bounded by the context and the
// composer's decode timeout, so a pathological payload cannot wedge an
// export. Any failure is reported as ErrDecode; nothing is drawn until
// decode has fully succeeded.
func (c *Composer) Decode(ctx context.Context, photoData []byte) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, c.decodeTimeout)
	defer cancel()

	type result struct {
		img image.Image
		err error
	}

	ch := make(chan result, 1)
	go func() {
		img, err := decodePayload(photoData)
		ch <- result{img: img, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", ErrDecode, ctx.Err())
	case res := <-ch:
		if res.err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecode, res.err)
		}
		return res.img, nil
	}
}

// decodePayload unwraps any base64 layer and decodes the image bytes.
func decodePayload(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty photo payload")
	}

	raw := data
	if i := bytes.IndexByte(data, ','); bytes.HasPrefix(data, []byte("data:")) && i >= 0 {
		raw = data[i+1:]
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err == nil {
		return img, nil
	}

	// Not raw image bytes; the capture flow may have handed us bare base64.
	decoded := make([]byte, base64.StdEncoding.DecodedLen(len(raw)))
	n, b64Err := base64.StdEncoding.Decode(decoded, raw)
	if b64Err != nil {
		return nil, err
	}

	img, _, err = image.Decode(bytes.NewReader(decoded[:n]))
	if err != nil {
		return nil, err
	}
	return img, nil
}
