package codegen

import (
	"github.com/validgen/validgen/internal/domain"
)

// emitModify writes the Modify method for a modify-mode schema.
// Modifiers run in declaration order, before validation, and always
// succeed. The ownership check has already guaranteed every field is
// owned, so no nil guards are needed here.
func emitModify(f *fileBuf, schema domain.SchemaDescriptor) {
	name := schema.Schema.Name

	f.printf("// Modify applies %s's modifiers in declaration order.", name)
	f.printf("func (s *%s) Modify() {", name)

	for _, fd := range schema.Fields {
		access := "s." + fd.Field.Name
		for _, mod := range fd.Modifiers {
			switch mod.Kind {
			case domain.ModTrim:
				f.need(runtimeModule + "/sanitize")
				f.printf("\t%s = sanitize.Trim(%s)", access, access)
			case domain.ModLowercase:
				f.need(runtimeModule + "/sanitize")
				f.printf("\t%s = sanitize.Lowercase(%s)", access, access)
			case domain.ModUppercase:
				f.need(runtimeModule + "/sanitize")
				f.printf("\t%s = sanitize.Uppercase(%s)", access, access)
			case domain.ModCapitalize:
				f.need(runtimeModule + "/sanitize")
				f.printf("\t%s = sanitize.Capitalize(%s)", access, access)
			case domain.ModNested:
				f.printf("\t%s.Modify()", access)
			case domain.ModCustom:
				f.printf("\t%s = %s(%s)", access, mod.Params["fn"], access)
			}
		}
	}

	f.printf("}")
	f.printf("")
}
