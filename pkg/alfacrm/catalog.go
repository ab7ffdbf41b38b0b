package alfacrm

// DefaultRegistry returns descriptors for every resource the API exposes.
// Field lists and bounds mirror the upstream API contract. Resources without
// a declared schema for an operation accept raw input for it.
func DefaultRegistry() *Registry {
	return NewRegistry(
		branchDescriptor(),
		customerDescriptor(),
		customerGroupsDescriptor(),
		groupCustomersDescriptor(),
		communicationDescriptor(),
		customerTariffDescriptor(),
		groupDescriptor(),
		leadRejectDescriptor(),
		locationDescriptor(),
		roomDescriptor(),
		subjectDescriptor(),
		studyStatusDescriptor(),
		leadStatusDescriptor(),
		leadSourceDescriptor(),
		payDescriptor(),
		lessonDescriptor(),
		bonusDescriptor(),
		logDescriptor(),
		regularLessonDescriptor(),
		tariffDescriptor(),
		taskDescriptor(),
		teacherDescriptor(),
		teacherRateDescriptor(),
		workingHoursDescriptor(),
	)
}

// pageField is shared by every filter schema. Explicit use of it disables
// automatic pagination for that call.
func pageField() Field { return Int("page").Min(0) }

func branchDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "branch",
		Path:           []string{"branch"},
		BranchRequired: false,
		Filter: NewSchema(
			pageField(),
			Int("id"),
			Str("name").Len(0, 50),
			Int("is_active").Between(0, 1),
			IntList("subject_ids"),
		),
		Create: NewSchema(
			Str("name").Req().Len(0, 50),
			Int("is_active").Between(0, 1),
			IntList("subject_ids"),
		),
		Update: NewSchema(
			Str("name").Len(0, 50),
			Int("is_active").Between(0, 1),
			IntList("subject_ids"),
		),
	}
}

func customerDescriptor() *Descriptor {
	base := []Field{
		Str("name").Len(0, 50),
		IntList("branch_ids"),
		IntList("teacher_ids"),
		Int("legal_type").Between(1, 2),
		Int("is_study").Between(0, 1),
		Int("study_status_id"),
		Int("lead_source_id"),
		Int("assigned_id"),
		Int("employee_id"),
		Int("company_id"),
		Str("legal_name").Len(0, 50),
		Date("dob", DateISO),
		StrList("phone"),
		StrList("email"),
		StrList("web"),
		StrList("addr"),
		Int("color"),
		Str("note"),
	}

	create := make([]Field, len(base))
	copy(create, base)
	create[0] = create[0].Req()
	create[3] = create[3].Req()
	create[4] = create[4].Req()

	return &Descriptor{
		Name:           "customer",
		Path:           []string{"customer"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("id"),
			Int("is_study").Between(0, 2),
			Str("name"),
			Int("gender").Between(0, 2),
			Str("phone"),
			Int("legal_type").Between(1, 2),
			Int("age_from").Between(0, 150),
			Int("age_to").Between(0, 150),
			Int("lesson_count_from").Min(0),
			Int("lesson_count_to").Min(0),
			Float("balance_contract_from"),
			Float("balance_contract_to"),
			Float("balance_bonus_from"),
			Float("balance_bonus_to"),
			Date("next_lesson_date_from", DateISO),
			Date("next_lesson_date_to", DateISO),
			Date("last_attend_date_from", DateISO),
			Date("last_attend_date_to", DateISO),
			Date("created_at_from", DateDotted),
			Date("created_at_to", DateDotted),
			Date("updated_at_from", DateDotted),
			Date("updated_at_to", DateDotted),
			Date("dob_from", DateISO),
			Date("dob_to", DateISO),
			Bool("with_groups"),
			Int("removed").Between(0, 2),
			Int("customer_reject_id"),
		).WithRules(
			NumericRange("age_from", "age_to"),
			DateRange("dob_from", "dob_to", DateISO),
			DateRange("created_at_from", "created_at_to", DateDotted),
			DateRange("updated_at_from", "updated_at_to", DateDotted),
		),
		Create: NewSchema(create...),
		Update: NewSchema(base...),
	}
}

func cgiFields() []Field {
	return []Field{
		Int("customer_id").Req(),
		Int("group_id").Req(),
		Date("b_date", DateDotted).Req(),
		Date("e_date", DateDotted).Req(),
		Int("branch_id").Req(),
	}
}

func cgiUpdateSchema() *Schema {
	return NewSchema(
		Date("b_date", DateDotted),
		Date("e_date", DateDotted),
		Int("branch_id"),
	)
}

func customerGroupsDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "customer-groups",
		Path:           []string{"cgi", "customer"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Date("b_date", DateDotted),
			Date("e_date", DateDotted),
		),
		Create: NewSchema(cgiFields()...).WithRules(DateRange("b_date", "e_date", DateDotted)),
		Update: cgiUpdateSchema(),
	}
}

func groupCustomersDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "group-customers",
		Path:           []string{"cgi"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Date("b_date", DateDotted),
			Date("e_date", DateDotted),
		),
		Create: NewSchema(cgiFields()...).WithRules(DateRange("b_date", "e_date", DateDotted)),
		Update: cgiUpdateSchema(),
	}
}

func communicationDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "communication",
		Path:           []string{"communication"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("id"),
			Int("type_id"),
			Int("user_id"),
			Str("comment"),
		),
		Create: NewSchema(
			Str("comment").Req().Len(0, 2048),
			Enum("class", "Customer", "Group").Req(),
			Int("related_id").Req(),
		),
		Update: NewSchema(
			Str("comment").Req().Len(0, 2048),
		),
	}
}

func customerTariffDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "customer-tariff",
		Path:           []string{"customer_tariff"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("id").Min(1),
			Int("customer_id").Min(1),
			Int("tariff_id").Min(1),
			Bool("is_burnable_out"),
			Any("balance"),
			Bool("dead"),
			Int("tariff_type").Between(1, 3),
			Bool("is_separate_balance"),
		),
		Create: NewSchema(
			Int("tariff_id").Req().Min(1),
			Int("customer_id").Req().Min(1),
			Int("balance").Req().Min(0),
			IntList("subject_ids"),
			IntList("lesson_type_ids"),
			Bool("is_separate_balance"),
			Date("b_date", DateDotted),
			Date("e_date", DateDotted),
			Str("note").Len(0, 500),
		).WithRules(DateRange("b_date", "e_date", DateDotted)),
		Update: NewSchema(
			Str("note").Len(0, 500),
			Int("balance").Min(0),
		),
	}
}

func groupDescriptor() *Descriptor {
	base := []Field{
		Str("name").Len(0, 50),
		IntList("branch_ids"),
		IntList("teacher_ids"),
		Int("level_id"),
		Int("status_id"),
		Date("b_date", DateISO),
		Date("e_date", DateISO),
		Str("note").Len(0, 255),
	}

	create := make([]Field, len(base))
	copy(create, base)
	create[0] = create[0].Req()
	create[1] = create[1].Req()

	return &Descriptor{
		Name:           "group",
		Path:           []string{"group"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			IntList("ids"),
			Int("id"),
			Str("name"),
			Str("note"),
			Str("customer_name"),
			Int("removed").Between(0, 2),
			Int("level_id"),
			Int("status_id"),
			Int("branch_id"),
			Int("teacher_id"),
			Date("b_date_from", DateISO),
			Date("b_date_to", DateISO),
			Date("e_date_from", DateISO),
			Date("e_date_to", DateISO),
			Date("updated_at_from", DateDotted),
			Date("updated_at_to", DateDotted),
			Date("created_at_from", DateDotted),
			Date("created_at_to", DateDotted),
		).WithRules(
			DateRange("b_date_from", "b_date_to", DateISO),
			DateRange("e_date_from", "e_date_to", DateISO),
			DateRange("updated_at_from", "updated_at_to", DateDotted),
			DateRange("created_at_from", "created_at_to", DateDotted),
		),
		Create: NewSchema(create...),
		Update: NewSchema(base...),
	}
}

func leadRejectDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "lead-reject",
		Path:           []string{"lead_reject"},
		BranchRequired: true,
		Filter:         NewSchema(pageField()),
		Create: NewSchema(
			Str("name").Req().Len(0, 50),
			Int("is_enabled").Req().Between(0, 1),
			Int("weight").Min(0),
		),
		Update: NewSchema(
			Str("name").Len(0, 50),
			Int("is_enabled").Between(0, 1),
			Int("weight").Min(0),
		),
	}
}

func locationDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "location",
		Path:           []string{"location"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("id"),
		),
		Create: NewSchema(
			Str("name").Req().Len(0, 50),
			Int("is_active").Req().Between(0, 1),
			Int("branch_id").Req(),
		),
		Update: NewSchema(
			Str("name").Len(0, 50),
			Int("is_active").Between(0, 1),
			Int("branch_id"),
		),
	}
}

func roomDescriptor() *Descriptor {
	base := []Field{
		Int("branch_id"),
		Int("location_id"),
		Int("streaming_id"),
		Int("color_id"),
		Str("name").Len(0, 50),
		Str("note").Len(0, 50),
		Int("is_enabled").Between(0, 1),
		Int("weight").Min(0),
	}

	create := make([]Field, len(base))
	copy(create, base)
	create[0] = create[0].Req()
	create[3] = create[3].Req()
	create[4] = create[4].Req()
	create[7] = create[7].Req()

	return &Descriptor{
		Name:           "room",
		Path:           []string{"room"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("is_enabled").Between(0, 1),
		),
		Create: NewSchema(create...),
		Update: NewSchema(base...),
	}
}

func subjectDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "subject",
		Path:           []string{"subject"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("id"),
			Str("name"),
			Bool("active"),
		),
		Create: NewSchema(
			Str("name").Req().Len(0, 50),
		),
		Update: NewSchema(
			Str("name").Len(0, 50),
		),
	}
}

// enabledDictionary covers the small reference dictionaries that share the
// same name/is_enabled shape.
func enabledDictionary(name, path string) *Descriptor {
	return &Descriptor{
		Name:           name,
		Path:           []string{path},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("id"),
			Str("name"),
			Int("is_enabled").Between(0, 1),
		),
		Create: NewSchema(
			Str("name").Req().Len(0, 50),
			Int("is_enabled").Req().Between(0, 1),
		),
		Update: NewSchema(
			Str("name").Len(0, 50),
			Int("is_enabled").Between(0, 1),
		),
	}
}

func studyStatusDescriptor() *Descriptor {
	return enabledDictionary("study-status", "study-status")
}

func leadStatusDescriptor() *Descriptor {
	return enabledDictionary("lead-status", "lead-status")
}

func leadSourceDescriptor() *Descriptor {
	d := enabledDictionary("lead-source", "lead-source")
	d.Filter.Fields = append(d.Filter.Fields, Str("code").Len(0, 50))
	d.Create.Fields = append(d.Create.Fields, Str("code").Req().Len(0, 50))
	d.Update.Fields = append(d.Update.Fields, Str("code").Len(0, 50))

	return d
}

func payDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "pay",
		Path:           []string{"pay"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("id"),
			Str("currency"),
			Int("location_id"),
			Int("customer_id"),
			Int("employee_id"),
			Int("pay_item_category_id"),
			Int("pay_type_id"),
			Int("pay_item_id"),
			Int("pay_account_id"),
			Int("commodity_id"),
			Str("payer_name"),
			Str("note"),
			Date("date_from", DateDottedYMD),
			Date("date_to", DateDottedYMD),
			Float("sum_from"),
			Float("sum_to"),
			Float("bonus_from"),
			Float("bonus_to"),
			Int("is_confirmed").Between(0, 1),
			IntList("group_ids"),
			Int("is_fiscal").Between(0, 1),
			Date("updated_at_from", DateDotted),
			Date("updated_at_to", DateDotted),
			Date("created_at_from", DateDotted),
			Date("created_at_to", DateDotted),
		).WithRules(
			DateRange("date_from", "date_to", DateDottedYMD),
			NumericRange("sum_from", "sum_to"),
		),
		Create: NewSchema(
			Int("branch_id").Req(),
			Int("customer_id").Req(),
			Int("pay_type_id").Req(),
			Int("pay_account_id").Req(),
			Date("document_date", DateDotted).Req(),
			Float("income").Req().Min(0.01),
			Str("payer_name").Req().Len(0, 50),
			Str("note"),
		),
		Update: NewSchema(
			Float("income"),
			Str("payer_name"),
			Str("note"),
		),
	}
}

func lessonDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "lesson",
		Path:           []string{"lesson"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("id").Min(1),
			Enum("status", "1", "2", "3"),
			Int("teacher_id").Min(1),
			Int("customer_id").Min(1),
			Int("group_id").Min(1),
			Int("subject_id").Min(1),
			IntList("location_ids"),
			IntList("room_ids"),
			Date("date_from", DateISO),
			Date("date_to", DateISO),
		).WithRules(DateRange("date_from", "date_to", DateISO)),
		Create: NewSchema(
			Int("subject_id").Req().Min(1),
			IntList("teacher_ids").Req(),
			Int("room_id").Min(1),
			Enum("status", "1", "2", "3"),
			Str("topic").Len(0, 255),
			Str("homework"),
			Int("duration").Min(1),
			Date("lesson_date", DateISO).Req(),
			Clock("time_from").Req(),
			Clock("time_to").Req(),
			Int("lesson_type_id").Req().Min(1),
			IntList("group_ids"),
			IntList("customer_ids"),
		).WithRules(ClockRange("time_from", "time_to")),
		Update: NewSchema(
			Int("subject_id").Min(1),
			IntList("teacher_ids"),
			Int("room_id").Min(1),
			Enum("status", "1", "2", "3"),
			Str("topic").Len(0, 255),
			Str("homework"),
			Int("duration").Min(1),
			Date("lesson_date", DateISO),
			Clock("time_from"),
			Clock("time_to"),
		),
	}
}

func bonusDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "bonus",
		Path:           []string{"bonus"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("customer_id").Req().Min(1),
			Enum("type", "add", "spend"),
			Date("date_from", DateISO),
			Date("date_to", DateISO),
		).WithRules(DateRange("date_from", "date_to", DateISO)),
		Create: NewSchema(
			Int("customer_id").Req().Min(1),
			Int("amount").Req().Min(1),
			Str("note").Len(0, 500),
			Date("date", DateISO),
		),
	}
}

func logDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "log",
		Path:           []string{"log"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Str("entity"),
			Int("entity_id"),
			Int("user_id"),
			Int("event").Between(1, 3),
			Date("date_from", DateDotted),
			Date("date_to", DateDotted),
		).WithRules(DateRange("date_from", "date_to", DateDotted)),
	}
}

func regularLessonDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "regular-lesson",
		Path:           []string{"regular-lesson"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			IntList("ids"),
			Int("id"),
			Int("subject_id"),
			Int("teacher_id"),
			Date("date_from", DateDotted),
			Date("date_to", DateDotted),
			Str("time_from"),
			Str("time_to"),
			Int("public").Between(0, 1),
		).WithRules(DateRange("date_from", "date_to", DateDotted)),
		Create: NewSchema(
			Int("lesson_type_id").Req(),
			Enum("related_class", "Group", "Customer").Req(),
			Int("related_id").Req(),
			Int("subject_id").Req(),
			IntList("teacher_ids").Req(),
			Int("room_id"),
			Str("day").Match(`^[1-7]$`),
			Str("days").Len(0, 20),
			Clock("time_from_v").Req(),
			Clock("time_to_v").Req(),
			Date("b_date", DateDotted).Req(),
			Date("e_date", DateDotted).Req(),
		).WithRules(
			ClockRange("time_from_v", "time_to_v"),
			DateRange("b_date", "e_date", DateDotted),
		),
		Update: NewSchema(
			Str("note").Len(0, 500),
		),
	}
}

func tariffDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "tariff",
		Path:           []string{"tariff"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Str("name"),
			Enum("tariff_type", "1", "2", "3"),
			Int("subject_id").Min(1),
			Float("price_from"),
			Float("price_to"),
			Enum("status", "active", "archived"),
			Date("date_from", DateISO),
			Date("date_to", DateISO),
		).WithRules(
			NumericRange("price_from", "price_to"),
			DateRange("date_from", "date_to", DateISO),
		),
		Create: NewSchema(
			Str("name").Req().Len(3, 100),
			Enum("tariff_type", "1", "2", "3").Req(),
			IntList("subject_ids").Req(),
			Int("duration").Min(1),
			Int("max_lessons").Min(1),
			Float("price").Req().Min(0.01),
			Bool("is_burnable"),
			Enum("status", "active", "archived"),
			Date("b_date", DateISO).Req(),
		),
		Update: NewSchema(
			Enum("status", "active", "archived"),
			Date("e_date", DateISO),
			Bool("is_burnable"),
		),
	}
}

func taskDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "task",
		Path:           []string{"task"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Str("title"),
			Enum("status", "new", "in_progress", "completed", "canceled"),
			Enum("priority", "low", "medium", "high"),
			Int("type_id"),
			Int("customer_id"),
			Int("assigned_to"),
			Bool("show_completed"),
			Date("date_from", DateISO),
			Date("date_to", DateISO),
		).WithRules(DateRange("date_from", "date_to", DateISO)),
		Create: NewSchema(
			Str("title").Req().Len(3, 200),
			Str("description").Len(0, 1000),
			Date("due_date", DateISO).Req(),
			Enum("status", "new", "in_progress", "completed", "canceled"),
			Enum("priority", "low", "medium", "high"),
			Int("type_id").Req().Min(1),
			Int("customer_id").Min(1),
			Int("assigned_to").Req().Min(1),
			Int("branch_id").Req().Min(1),
		),
		Update: NewSchema(
			Enum("status", "new", "in_progress", "completed", "canceled"),
			Date("due_date", DateISO),
			Int("assigned_to").Min(1),
			Str("description"),
		),
	}
}

func teacherDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "teacher",
		Path:           []string{"teacher"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Str("name"),
			Enum("status", "active", "fired"),
			Int("subject_id").Min(1),
			Int("branch_id").Min(1),
			Bool("has_working_hours"),
			Date("date_from", DateISO),
			Date("date_to", DateISO),
		).WithRules(DateRange("date_from", "date_to", DateISO)),
		Create: NewSchema(
			Str("first_name").Req().Len(2, 50),
			Str("last_name").Req().Len(2, 50),
			Str("patronymic").Len(2, 50),
			Str("phone").Match(`^\+7\d{10}$`),
			Str("email").Match(`^[^@]+@[^@]+\.[^@]+$`),
			Enum("status", "active", "fired"),
			Date("birth_date", DateISO),
			IntList("subjects"),
			Int("branch_id").Req().Min(1),
			Any("rates"),
			Any("working_hours"),
		),
		Update: NewSchema(
			Str("first_name").Len(2, 50),
			Str("last_name").Len(2, 50),
			Enum("status", "active", "fired"),
			Str("phone").Match(`^\+7\d{10}$`),
			Str("email"),
			IntList("subjects"),
		),
	}
}

func teacherRateDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "teacher-rate",
		Path:           []string{"teacher", "teacher-rate"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("teacher_id").Min(1),
			Int("subject_id").Min(1),
		),
		Create: NewSchema(
			Int("subject_id").Req().Min(1),
			Int("lesson_type_id").Req().Min(1),
			Float("rate").Req().Min(0.01),
		),
		Update: NewSchema(
			Int("subject_id").Min(1),
			Int("lesson_type_id").Min(1),
			Float("rate").Min(0.01),
		),
	}
}

func workingHoursDescriptor() *Descriptor {
	return &Descriptor{
		Name:           "working-hours",
		Path:           []string{"teacher", "working-hour"},
		BranchRequired: true,
		Filter: NewSchema(
			pageField(),
			Int("teacher_id").Min(1),
			Int("day_of_week").Between(1, 7),
		),
		Create: NewSchema(
			Int("day_of_week").Req().Between(1, 7),
			Clock("time_from").Req(),
			Clock("time_to").Req(),
		).WithRules(ClockRange("time_from", "time_to")),
	}
}
