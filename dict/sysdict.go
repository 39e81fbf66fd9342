package dict

import (
	"sync"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
)

var (
	ipaOnce sync.Once
	ipaDict *Dict
	uniOnce sync.Once
	uniDict *Dict
)

// IPA returns the embedded IPA system dictionary. The conversion runs
// once; the returned dictionary is shared and immutable.
func IPA() *Dict {
	ipaOnce.Do(func() {
		ipaDict = FromKagome(ipa.Dict())
		if ipaDict.Info == nil {
			ipaDict.Info = &Info{Name: "IPA Dictionary", Src: "kagome-dict/ipa"}
		}
	})
	return ipaDict
}

// Uni returns the embedded UniDic system dictionary.
func Uni() *Dict {
	uniOnce.Do(func() {
		uniDict = FromKagome(uni.Dict())
		if uniDict.Info == nil {
			uniDict.Info = &Info{Name: "UniDic", Src: "kagome-dict/uni"}
		}
	})
	return uniDict
}
