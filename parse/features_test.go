package parse

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/toml-fmt/toml-sort/ir"
)

func TestFeatures(t *testing.T) {
	convey.Convey("array of tables", t, func() {
		doc, err := Parse([]byte("[[bin]]\nname = \"one\"\n\n[[bin]]\nname = \"two\"\n"))
		convey.So(err, convey.ShouldBeNil)
		item := doc.Root.Get("bin")
		convey.So(item, convey.ShouldNotBeNil)
		convey.So(item.Kind, convey.ShouldEqual, ir.ArrayOfTablesItem)
		convey.So(len(item.Tables), convey.ShouldEqual, 2)
		name, ok := item.Tables[1].GetPair("name").Item.Value.AsString()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(name, convey.ShouldEqual, "two")
	})
	convey.Convey("inline table", t, func() {
		doc, err := Parse([]byte("serde = { version = \"1.0\", features = [\"derive\"] }\n"))
		convey.So(err, convey.ShouldBeNil)
		v := doc.Root.GetPair("serde").Item.Value
		convey.So(v.Kind, convey.ShouldEqual, ir.InlineTableKind)
		convey.So(len(v.Inline.Pairs), convey.ShouldEqual, 2)
		convey.So(v.Inline.Pairs[0].Key.Text, convey.ShouldEqual, "version")
		feats := v.Inline.Pairs[1].Item.Value
		convey.So(feats.IsStringArray(), convey.ShouldBeTrue)
	})
	convey.Convey("multiline basic string", t, func() {
		doc, err := Parse([]byte("s = \"\"\"\none\ntwo\"\"\"\n"))
		convey.So(err, convey.ShouldBeNil)
		s, ok := doc.Root.GetPair("s").Item.Value.AsString()
		convey.So(ok, convey.ShouldBeTrue)
		convey.So(s, convey.ShouldEqual, "one\ntwo")
	})
	convey.Convey("quoted keys", t, func() {
		doc, err := Parse([]byte("[target.'cfg(unix)'.dependencies]\nlibc = \"0.2\"\n"))
		convey.So(err, convey.ShouldBeNil)
		target := doc.Root.GetTable("target")
		convey.So(target, convey.ShouldNotBeNil)
		convey.So(target.Implicit, convey.ShouldBeTrue)
		cfg := target.GetTable("cfg(unix)")
		convey.So(cfg, convey.ShouldNotBeNil)
		deps := cfg.GetTable("dependencies")
		convey.So(deps, convey.ShouldNotBeNil)
		convey.So(deps.HasValues(), convey.ShouldBeTrue)
	})
	convey.Convey("dotted keys keep raw text", t, func() {
		doc, err := Parse([]byte("a . b = 1\n"))
		convey.So(err, convey.ShouldBeNil)
		kv := doc.Root.GetPair("a.b")
		convey.So(kv, convey.ShouldNotBeNil)
		convey.So(kv.Key.Raw, convey.ShouldEqual, "a . b")
		convey.So(kv.Key.Text, convey.ShouldEqual, "a.b")
	})
	convey.Convey("datetimes", t, func() {
		doc, err := Parse([]byte("d = 1979-05-27T07:32:00Z\n"))
		convey.So(err, convey.ShouldBeNil)
		v := doc.Root.GetPair("d").Item.Value
		convey.So(v.Kind, convey.ShouldEqual, ir.DateTimeKind)
		convey.So(v.Time.Year(), convey.ShouldEqual, 1979)
	})
	convey.Convey("comment trivia attaches to the pair", t, func() {
		doc, err := Parse([]byte("# lead\na = 1 # trail\n"))
		convey.So(err, convey.ShouldBeNil)
		kv := doc.Root.GetPair("a")
		convey.So(kv.Key.Decor.Prefix, convey.ShouldEqual, "# lead\n")
		convey.So(kv.Item.Value.Decor.Suffix, convey.ShouldEqual, " # trail")
	})
}
