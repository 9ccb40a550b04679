package internal

import (
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

func TestPrincipal(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Principal Suite")
}

var _ = ginkgo.Describe("Authorize", func() {
	admin := Principal{UserID: 1, Role: RoleAdmin, Name: "Admin"}
	employee := Principal{UserID: 2, Role: RoleEmployee, Name: "Employee"}

	ginkgo.It("should let admins create and update salary slips", func() {
		gomega.Expect(Authorize(admin, ActionCreateSalarySlip, 0)).To(gomega.Succeed())
		gomega.Expect(Authorize(admin, ActionUpdateSalarySlip, 0)).To(gomega.Succeed())
	})

	ginkgo.It("should deny employees salary slip management", func() {
		gomega.Expect(Authorize(employee, ActionCreateSalarySlip, 0)).To(gomega.Equal(ErrAccessDenied))
		gomega.Expect(Authorize(employee, ActionUpdateSalarySlip, 0)).To(gomega.Equal(ErrAccessDenied))
	})

	ginkgo.It("should let employees submit expenses but not admins", func() {
		gomega.Expect(Authorize(employee, ActionCreateExpense, 0)).To(gomega.Succeed())
		gomega.Expect(Authorize(admin, ActionCreateExpense, 0)).To(gomega.Equal(ErrAccessDenied))
	})

	ginkgo.It("should reserve expense decisions for admins", func() {
		gomega.Expect(Authorize(admin, ActionDecideExpense, 0)).To(gomega.Succeed())
		gomega.Expect(Authorize(employee, ActionDecideExpense, 0)).To(gomega.Equal(ErrAccessDenied))
	})

	ginkgo.It("should scope reads to admins and record owners", func() {
		gomega.Expect(Authorize(admin, ActionReadSalarySlip, 99)).To(gomega.Succeed())
		gomega.Expect(Authorize(employee, ActionReadSalarySlip, employee.UserID)).To(gomega.Succeed())
		gomega.Expect(Authorize(employee, ActionReadSalarySlip, 99)).To(gomega.Equal(ErrAccessDenied))
		gomega.Expect(Authorize(employee, ActionReadExpense, employee.UserID)).To(gomega.Succeed())
		gomega.Expect(Authorize(employee, ActionReadExpense, 99)).To(gomega.Equal(ErrAccessDenied))
	})
})

var _ = ginkgo.Describe("Role", func() {
	ginkgo.It("should recognize only the two known roles", func() {
		gomega.Expect(RoleAdmin.Valid()).To(gomega.BeTrue())
		gomega.Expect(RoleEmployee.Valid()).To(gomega.BeTrue())
		gomega.Expect(Role("superuser").Valid()).To(gomega.BeFalse())
	})
})
