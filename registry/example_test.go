package registry_test

import (
	"fmt"

	"github.com/6112/ciel/lang"
	"github.com/6112/ciel/registry"
)

func Example() {
	ini := &lang.Spec{
		Name:         "ini",
		Extra:        []lang.ExtraRule{{Pattern: `\[[^\]]*\]`, Class: lang.ClassKeyword}},
		DoubleQuoted: true,
		Comment:      ";",
	}

	reg := registry.New()
	if e := reg.Register(ini); e != nil {
		fmt.Println(e)
		return
	}

	out, e := reg.Highlight("ini", "; config\n[run]\nmode = \"fast\"")
	if e != nil {
		fmt.Println(e)
		return
	}
	fmt.Println(out)
	// Output:
	// <span class="comment">; config</span>
	// <span class="keyword">[run]</span>
	// mode = <span class="string">"fast"</span>
}
