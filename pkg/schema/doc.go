// Package schema attaches field rules to data-model entities and keeps the
// declared entities in a Registry.
//
// Entities are declared explicitly, either in code:
//
//	schema.MustRegister(schema.NewEntity("account",
//	    schema.StringField("status", fieldrule.MustNew([]string{"ACTIVE", "INACTIVE"})),
//	))
//
// or in YAML through Load / LoadFile:
//
//	entities:
//	  - name: account
//	    fields:
//	      - name: status
//	        type: string
//	        enumeratedStringRule:
//	          allowedValues: ["ACTIVE", "INACTIVE"]
//	          message: "must be one of ACTIVE, INACTIVE"
//	          stage: save
//
// Declaration problems are collected and returned together as a multierror
// whose entries are *fieldrule.DeclarationError values naming entity.field.
// They are meant to abort startup.
package schema
