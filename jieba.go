package morphemize

import (
	"fmt"
	"strings"

	"github.com/yanyiwu/gojieba"
)

// JiebaSegmenter is the production ChineseSegmenter, backed by the
// jieba POS tagger.
type JiebaSegmenter struct {
	jieba *gojieba.Jieba
}

// NewJiebaSegmenter builds a jieba segmenter with its bundled
// dictionaries. Call Close when done to release the dictionaries.
func NewJiebaSegmenter() *JiebaSegmenter {
	return &JiebaSegmenter{jieba: gojieba.NewJieba()}
}

// Cut implements ChineseSegmenter. jieba's Tag returns "word/flag"
// strings; the split is on the last slash since a word can itself
// contain a slash.
func (s *JiebaSegmenter) Cut(text string) ([]WordFlag, error) {
	if s == nil || s.jieba == nil {
		return nil, fmt.Errorf("jieba: segmenter not initialized")
	}
	tagged := s.jieba.Tag(text)
	pairs := make([]WordFlag, 0, len(tagged))
	for _, t := range tagged {
		word, flag := t, ""
		if i := strings.LastIndex(t, "/"); i >= 0 {
			word, flag = t[:i], t[i+1:]
		}
		if word == "" {
			continue
		}
		pairs = append(pairs, WordFlag{Word: word, Flag: flag})
	}
	return pairs, nil
}

// Close frees the jieba dictionaries.
func (s *JiebaSegmenter) Close() {
	if s != nil && s.jieba != nil {
		s.jieba.Free()
		s.jieba = nil
	}
}
