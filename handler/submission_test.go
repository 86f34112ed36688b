package handler

import (
	"bytes"
	"mime/multipart"

	"examination-backend/errs"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type formFile struct {
	field    string
	filename string
	content  string
}

func buildForm(files ...formFile) *multipart.Form {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.filename)
		Expect(err).To(BeNil())
		_, err = part.Write([]byte(f.content))
		Expect(err).To(BeNil())
	}
	Expect(w.Close()).To(BeNil())

	form, err := multipart.NewReader(buf, w.Boundary()).ReadForm(maxUploadMemory)
	Expect(err).To(BeNil())
	return form
}

var _ = Describe("collectAnswerFiles", func() {
	Specify("two files at indices 0 and 1 yield two ordered answers", func() {
		form := buildForm(
			formFile{"answers[0][file]", "q1.pdf", "first"},
			formFile{"answers[1][file]", "q2.pdf", "second"},
		)

		files, err := collectAnswerFiles(form)
		Expect(err).To(BeNil())
		Expect(files).To(HaveLen(2))
		Expect(files[0].FileName).To(Equal("q1.pdf"))
		Expect(files[0].FileBuffer).To(Equal([]byte("first")))
		Expect(files[1].FileName).To(Equal("q2.pdf"))
		Expect(files[1].FileBuffer).To(Equal([]byte("second")))
	})

	Specify("order follows the submitted index, not arrival order", func() {
		form := buildForm(
			formFile{"answers[2][file]", "c.pdf", "c"},
			formFile{"answers[0][file]", "a.pdf", "a"},
			formFile{"answers[1][file]", "b.pdf", "b"},
		)

		files, err := collectAnswerFiles(form)
		Expect(err).To(BeNil())
		Expect(files).To(HaveLen(3))
		Expect(files[0].FileName).To(Equal("a.pdf"))
		Expect(files[1].FileName).To(Equal("b.pdf"))
		Expect(files[2].FileName).To(Equal("c.pdf"))
	})

	Specify("duplicate indices are rejected", func() {
		form := buildForm(
			formFile{"answers[0][file]", "a.pdf", "a"},
			formFile{"answers[0][file]", "b.pdf", "b"},
		)

		_, err := collectAnswerFiles(form)
		Expect(err).To(Equal(errs.ErrAnswerIndices))
	})

	Specify("a gap in the indices is rejected", func() {
		form := buildForm(
			formFile{"answers[0][file]", "a.pdf", "a"},
			formFile{"answers[2][file]", "c.pdf", "c"},
		)

		_, err := collectAnswerFiles(form)
		Expect(err).To(Equal(errs.ErrAnswerIndices))
	})

	Specify("indices not starting at zero are rejected", func() {
		form := buildForm(formFile{"answers[1][file]", "b.pdf", "b"})

		_, err := collectAnswerFiles(form)
		Expect(err).To(Equal(errs.ErrAnswerIndices))
	})

	Specify("parts with other field names are ignored", func() {
		form := buildForm(
			formFile{"answers[0][file]", "a.pdf", "a"},
			formFile{"attachment", "x.pdf", "x"},
			formFile{"answers[file]", "y.pdf", "y"},
			formFile{"answers[0][image]", "z.png", "z"},
		)

		files, err := collectAnswerFiles(form)
		Expect(err).To(BeNil())
		Expect(files).To(HaveLen(1))
		Expect(files[0].FileName).To(Equal("a.pdf"))
	})

	Specify("no matching parts yield an empty list", func() {
		form := buildForm(formFile{"attachment", "x.pdf", "x"})

		files, err := collectAnswerFiles(form)
		Expect(err).To(BeNil())
		Expect(files).To(BeEmpty())
	})
})
