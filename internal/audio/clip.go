package audio

import (
	"bytes"
	"fmt"

	"github.com/bogem/id3v2"

	"github.com/handiism/define/internal/model"
)

// ClipInfo is the ID3 metadata found in a clip.
type ClipInfo struct {
	Title  string
	Artist string
}

// id3HeaderSize is the length of an ID3v2 tag header.
const id3HeaderSize = 10

// InspectClip reads the ID3 tag at the start of data, if any.
//
// Clips without a tag return a zero ClipInfo and no error.
func InspectClip(data []byte) (ClipInfo, error) {
	if len(data) < id3HeaderSize || !bytes.HasPrefix(data, []byte("ID3")) {
		return ClipInfo{}, nil
	}
	tag, err := id3v2.ParseReader(bytes.NewReader(data), id3v2.Options{
		Parse:       true,
		ParseFrames: []string{"Title", "Artist"},
	})
	if err != nil {
		return ClipInfo{}, fmt.Errorf("parse id3 tag: %w", err)
	}
	return ClipInfo{Title: tag.Title(), Artist: tag.Artist()}, nil
}

// Annotate fills clip.Title from the clip's ID3 tag, preferring
// "Artist - Title" when both are present. Errors leave the clip unchanged.
func Annotate(clip *model.AudioClip) error {
	if clip == nil || len(clip.Data) == 0 {
		return nil
	}
	info, err := InspectClip(clip.Data)
	if err != nil {
		return err
	}
	switch {
	case info.Title != "" && info.Artist != "":
		clip.Title = info.Artist + " - " + info.Title
	case info.Title != "":
		clip.Title = info.Title
	}
	return nil
}
